package domain

import "time"

// Announcement is a transient notice. A nil DurationMS means it stays
// until the next announcement replaces it.
type Announcement struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	DurationMS *int   `json:"duration_ms" validate:"omitnil,gt=0"`
}

func (a Announcement) Duration() (time.Duration, bool) {
	if a.DurationMS == nil {
		return 0, false
	}
	return time.Duration(*a.DurationMS) * time.Millisecond, true
}
