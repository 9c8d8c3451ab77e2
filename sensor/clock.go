//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=../mocks/mock_clock.go -package=mocks
package sensor

import "time"

// Clock stamps generated readings.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
