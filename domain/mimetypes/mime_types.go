package mimetypes

import (
	"kiosk-lab/domain"
	"mime"
	"strings"
)

type MIME string

const (
	VideoMP4 MIME = "video/mp4"

	// ImageAny stands for every image/* subtype.
	ImageAny MIME = "image/*"
)

// Matches reports whether a detected MIME, parameters ignored, is expected.
// A wildcard subtype such as image/* matches the whole family.
func Matches(detected string, expected MIME) bool {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return false
	}
	if family, ok := strings.CutSuffix(string(expected), "/*"); ok {
		return strings.HasPrefix(mt, family+"/")
	}
	return mt == string(expected)
}

// ToMediaType maps a sniffed MIME onto the playlist vocabulary.
// Every image subtype plays as a still image; mp4 is the only video container kiosks decode.
func ToMediaType(detected string) (domain.MediaType, bool) {
	switch {
	case Matches(detected, ImageAny):
		return domain.MediaImage, true
	case Matches(detected, VideoMP4):
		return domain.MediaVideo, true
	default:
		return "", false
	}
}
