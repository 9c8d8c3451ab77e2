//go:build tools

// Package kiosk_lab pins the code generators run through `go generate`
// (mockgen for sensor.Clock) so their versions live in go.mod.
package kiosk_lab

import (
	_ "go.uber.org/mock/mockgen"
)
