// Package domain contains the value model shared by the kiosk front-end.
// Values here are produced by the schema package and are immutable once validated.
package domain

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video/mp4"
)

// Media is a single asset of a kiosk playlist.
type Media struct {
	ID     int       `json:"pk" validate:"gt=0"`
	Type   MediaType `json:"type" validate:"oneof=image video/mp4"`
	Source string    `json:"src"`
}

func (m Media) IsImage() bool { return m.Type == MediaImage }

func (m Media) IsVideo() bool { return m.Type == MediaVideo }
