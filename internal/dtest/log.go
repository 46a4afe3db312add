package dtest

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a logger that writes through t.Log,
// so output is only shown for failing tests or with -v.
func NewLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slogt.New(t, slogt.Text())
}
