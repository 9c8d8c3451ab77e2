package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"kiosk-lab/domain"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func (a *App) sensor(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("sensor", flag.ContinueOnError)
	flags.SetOutput(a.stderr)
	kioskID := flags.Int("kiosk", a.config.KioskID, "kiosk the readings belong to")
	count := flags.Int("n", a.config.SensorSamples, "number of readings")
	every := flags.Duration("every", 0, "interval between readings, 0 emits them at once")
	asJSON := flags.Bool("json", false, "print one JSON object per line")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *count <= 0 {
		return fmt.Errorf("-n must be positive, got %d", *count)
	}

	readings, err := a.collect(ctx, *kioskID, *count, *every)
	if err != nil {
		return err
	}
	a.log.Debug("Sensor readings generated", "kiosk", *kioskID, "count", len(readings))

	if *asJSON {
		enc := json.NewEncoder(a.stdout)
		for _, r := range readings {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Fprintln(a.stdout, a.paint(color.New(color.BgBlack, color.FgGreen), fmt.Sprintf("  ====== kiosk %d ======", *kioskID)))
	table := tablewriter.NewWriter(a.stdout)
	table.SetHeader([]string{"Time", "Temp", "Humidity", "Pressure", "DAQI", "Band", "Current", "Voltage"})
	table.SetBorder(false)
	table.AppendBulk(lo.Map(readings, func(r domain.SensorReading, _ int) []string {
		return []string{
			r.Time.Format("15:04:05.000"),
			number(r.Temperature), number(r.Humidity), number(r.Pressure),
			number(r.AirQuality), string(r.Band()),
			number(r.Current), number(r.Voltage),
		}
	}))
	table.Render()
	return nil
}

// collect returns count readings, paced by every when it is positive.
func (a *App) collect(ctx context.Context, kioskID, count int, every time.Duration) ([]domain.SensorReading, error) {
	if every <= 0 {
		return lo.Times(count, func(_ int) domain.SensorReading { return a.generator.Generate(kioskID) }), nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	out := make(chan domain.SensorReading)
	errChan := make(chan error, 1)
	go func() { errChan <- a.generator.Run(ctx, kioskID, every, out) }()

	readings := make([]domain.SensorReading, 0, count)
	for len(readings) < count {
		select {
		case r := <-out:
			readings = append(readings, r)
		case <-ctx.Done():
			return readings, ctx.Err()
		}
	}
	cancel()
	<-errChan
	return readings, nil
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
