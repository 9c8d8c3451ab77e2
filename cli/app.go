// Package cli implements kioskctl, an operator tool to check kiosk payloads,
// render them as highlighted HTML and produce demo sensor data.
package cli

import (
	"context"
	"fmt"
	"io"
	"kiosk-lab/errors"
	"kiosk-lab/internal"
	"kiosk-lab/media"
	"kiosk-lab/sensor"
	"log/slog"
	"os"

	"github.com/gookit/color"
)

const usage = `usage: kioskctl <command> [flags] [args]

commands:
  validate <kiosk|announcement|media|conversation|message> <file>
  highlight [-page] <file>
  sensor [-kiosk N] [-n COUNT] [-every DURATION] [-json]
  probe [-id N] [-html] <file>
`

type App struct {
	log       *slog.Logger
	config    internal.Config
	stdout    io.Writer
	stderr    io.Writer
	generator *sensor.Generator
	prober    media.Prober
}

func NewApp(log *slog.Logger, config internal.Config, stdout, stderr io.Writer) *App {
	return &App{
		log:       log,
		config:    config,
		stdout:    stdout,
		stderr:    stderr,
		generator: sensor.NewGenerator(nil, sensor.DefaultRanges, nil),
		prober:    media.NewProber(log),
	}
}

// Run dispatches args[0] to its command. A payload that fails validation is
// reported on stdout and returned as an error matching errors.ErrValidation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("%w: command", errors.ErrMissingArgument)
	}
	command, rest := args[0], args[1:]
	a.log.Debug("Running command", "command", command, "args", rest)

	switch command {
	case "validate":
		return a.validate(rest)
	case "highlight":
		return a.highlight(rest)
	case "sensor":
		return a.sensor(ctx, rest)
	case "probe":
		return a.probe(rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.stdout, usage)
		return nil
	default:
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("%w: %q", errors.ErrUnknownCommand, command)
	}
}

func (a *App) paint(style color.Style, text string) string {
	if !a.config.Colours {
		return text
	}
	return style.Render(text)
}

// readPayload reads at most MaxPayloadBytes from path.
func (a *App) readPayload(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	limit := int64(a.config.MaxPayloadBytes)
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", errors.ErrPayloadTooLarge, path, limit)
	}
	return data, nil
}
