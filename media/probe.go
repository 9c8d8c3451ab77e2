package media

import (
	"fmt"
	"io"
	"kiosk-lab/domain"
	"kiosk-lab/domain/mimetypes"
	"kiosk-lab/errors"
	"kiosk-lab/schema"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

const sniffLen = 512

// Prober builds playlist entries from local asset files.
type Prober struct {
	log *slog.Logger
}

func NewProber(log *slog.Logger) Prober {
	return Prober{log: log}
}

// Probe sniffs the content of path, not its extension, and returns a validated descriptor
// whose source is path itself.
func (p Prober) Probe(path string, id int) (domain.Media, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Media{}, err
	}
	defer file.Close()

	sniffBuf := make([]byte, sniffLen)
	n, err := io.ReadFull(file, sniffBuf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		p.log.Error("Unable to sniff media file", "path", path, "error", err)
		return domain.Media{}, err
	}

	rawMimeType := mimetype.Detect(sniffBuf[:n]).String()
	mediaType, ok := mimetypes.ToMediaType(rawMimeType)
	if !ok {
		p.log.Debug("Rejected media file", "path", path, "mime", rawMimeType)
		return domain.Media{}, fmt.Errorf("%w: %s is %s", errors.ErrUnsupportedMedia, path, rawMimeType)
	}
	p.log.Debug("Media file sniffed", "path", path, "mime", rawMimeType, "type", mediaType)

	return schema.ValidateMedia(domain.Media{ID: id, Type: mediaType, Source: path})
}
