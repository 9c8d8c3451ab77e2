package e2e

import (
	"bytes"
	"context"
	"fmt"
	"kiosk-lab/cli"
	"kiosk-lab/internal"
	"log/slog"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseSuite) Fixture(name string) string {
	return filepath.Join(s.Config.FixturesDir, name)
}

// Kioskctl runs one kioskctl invocation and returns its stdout.
func (s *BaseSuite) Kioskctl(args ...string) (string, error) {
	header := fmt.Sprintf("  ====== kioskctl %v ======", args)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	var stdout, stderr bytes.Buffer
	config := internal.Config{LogLevel: "DEBUG", KioskID: 1, SensorSamples: 1, MaxPayloadBytes: 1 << 20}
	app := cli.NewApp(logs.GetLoggerFromLevel(slog.LevelDebug), config, &stdout, &stderr)
	err := app.Run(context.Background(), args)
	if stderr.Len() > 0 {
		s.T().Log(stderr.String())
	}
	return stdout.String(), err
}
