package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"kiosk-lab/domain"
	"kiosk-lab/media"
	"kiosk-lab/schema"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	outputDir := flag.String("out", "./test_data", "destination directory")
	flag.Parse()

	if err := run(*outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run writes a demo playlist (one PNG, one MP4 stub) and a kiosk payload referencing it.
func run(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", outputDir, err)
	}
	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	prober := media.NewProber(log)

	imgPath := filepath.Join(outputDir, "welcome.png")
	if err := genImage(imgPath); err != nil {
		return err
	}
	videoPath := filepath.Join(outputDir, "tour.mp4")
	if err := genVideoStub(videoPath); err != nil {
		return err
	}

	var playlist []domain.Media
	for i, path := range []string{imgPath, videoPath} {
		m, err := prober.Probe(path, i+1)
		if err != nil {
			return err
		}
		playlist = append(playlist, m)
	}

	kiosk, err := schema.ValidateKiosk(domain.Kiosk{
		ID:              1,
		Name:            "Demo kiosk",
		ImageDurationMS: 5000,
		Media:           playlist,
		ChatPlaceholder: "Ask me anything",
		Conversations: []domain.Conversation{{
			ID: 1,
			Messages: []domain.Message{
				{ID: 1, Text: "Hello!", IsUser: true},
				{ID: 2, Text: "Hi, how can I help?", IsUser: false},
			},
		}},
		Backend: domain.Backend{Websocket: "ws://localhost:8000/ws/kiosk/1", API: "http://localhost:8000/api/"},
	})
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(kiosk, "", "    ")
	if err != nil {
		return err
	}
	kioskPath := filepath.Join(outputDir, "kiosk.json")
	if err := os.WriteFile(kioskPath, payload, 0644); err != nil {
		return err
	}
	log.Info("Fixtures written", "dir", outputDir, "media", len(playlist), "kiosk", kioskPath)
	return nil
}

// genImage draws an 800x600 gradient.
func genImage(path string) error {
	width, height := 800, 600
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 255), 100, 200, 0xff})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// genVideoStub writes only an ftyp box, enough for content sniffing but not for playback.
func genVideoStub(path string) error {
	head := append([]byte{0x00, 0x00, 0x00, 0x18}, []byte("ftypmp42\x00\x00\x00\x00mp42isom")...)
	return os.WriteFile(path, head, 0644)
}
