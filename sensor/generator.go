// Package sensor synthesizes kiosk sensor readings for demos and tests without hardware.
package sensor

import (
	"context"
	"fmt"
	"kiosk-lab/domain"
	"kiosk-lab/errors"
	"math/rand/v2"
	"sync"
	"time"
)

// Range is an inclusive interval of integer values.
type Range struct {
	Min int
	Max int
}

func (r Range) Contains(v float64) bool {
	return v >= float64(r.Min) && v <= float64(r.Max)
}

type Ranges struct {
	Temperature Range
	Humidity    Range
	Pressure    Range
	AirQuality  Range
	Current     Range
	Voltage     Range
}

var DefaultRanges = Ranges{
	Temperature: Range{Min: 0, Max: 100},
	Humidity:    Range{Min: 30, Max: 60},
	Pressure:    Range{Min: 0, Max: 100},
	AirQuality:  Range{Min: 0, Max: 10},
	Current:     Range{Min: 0, Max: 10},
	Voltage:     Range{Min: 0, Max: 12},
}

// Generator draws every field independently from its range.
// With a nil source it uses the runtime's global generator, which needs no locking.
type Generator struct {
	clock  Clock
	ranges Ranges

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(clock Clock, ranges Ranges, source rand.Source) *Generator {
	if clock == nil {
		clock = systemClock{}
	}
	g := &Generator{clock: clock, ranges: ranges}
	if source != nil {
		g.rng = rand.New(source)
	}
	return g
}

var defaultGenerator = NewGenerator(systemClock{}, DefaultRanges, nil)

// GenerateSensorData returns a random reading for kioskID stamped with the current time.
func GenerateSensorData(kioskID int) domain.SensorReading {
	return defaultGenerator.Generate(kioskID)
}

func (g *Generator) Generate(kioskID int) domain.SensorReading {
	return domain.SensorReading{
		Kiosk:       kioskID,
		Time:        g.clock.Now(),
		Temperature: g.draw(g.ranges.Temperature),
		Humidity:    g.draw(g.ranges.Humidity),
		Pressure:    g.draw(g.ranges.Pressure),
		AirQuality:  g.draw(g.ranges.AirQuality),
		Current:     g.draw(g.ranges.Current),
		Voltage:     g.draw(g.ranges.Voltage),
	}
}

// Run emits one reading per interval on out until ctx is done.
// A non-positive interval is rejected with errors.ErrInvalidInterval.
func (g *Generator) Run(ctx context.Context, kioskID int, interval time.Duration, out chan<- domain.SensorReading) error {
	if interval <= 0 {
		return fmt.Errorf("%w: got %s", errors.ErrInvalidInterval, interval)
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			select {
			case out <- g.Generate(kioskID):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (g *Generator) draw(r Range) float64 {
	if r.Max <= r.Min {
		return float64(r.Min)
	}
	n := r.Max - r.Min + 1
	if g.rng == nil {
		return float64(r.Min + rand.IntN(n))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return float64(r.Min + g.rng.IntN(n))
}
