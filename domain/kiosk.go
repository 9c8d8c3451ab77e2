package domain

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
)

// Backend holds the endpoints a kiosk talks to.
type Backend struct {
	Websocket string `json:"websocket" validate:"url"`
	API       string `json:"api" validate:"url"`
}

// Kiosk is the aggregate root of a display unit configuration.
// It owns its playlist and conversations by value.
type Kiosk struct {
	ID              int            `json:"id" validate:"gt=0"`
	Name            string         `json:"name"`
	ImageDurationMS int            `json:"image_duration_ms" validate:"gt=0"`
	Media           []Media        `json:"media" validate:"dive"`
	ChatPlaceholder string         `json:"chat_placeholder"`
	Conversations   []Conversation `json:"conversations" validate:"dive"`
	Backend         Backend        `json:"backend"`
}

// MarshalJSON writes nil collections as [], so a kiosk built in Go serializes
// the same way as one decoded from a payload.
func (k Kiosk) MarshalJSON() ([]byte, error) {
	type plain Kiosk
	if k.Media == nil {
		k.Media = []Media{}
	}
	if k.Conversations == nil {
		k.Conversations = []Conversation{}
	}
	return json.Marshal(plain(k))
}

// ImageDuration is how long a still image stays on screen.
func (k Kiosk) ImageDuration() time.Duration {
	return time.Duration(k.ImageDurationMS) * time.Millisecond
}

func (k Kiosk) Images() []Media {
	return lo.Filter(k.Media, func(m Media, _ int) bool { return m.IsImage() })
}

func (k Kiosk) Videos() []Media {
	return lo.Filter(k.Media, func(m Media, _ int) bool { return m.IsVideo() })
}
