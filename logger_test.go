package spline

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	_, err := Solve([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "solved control points")
	assert.Contains(t, buf.String(), "segments=2")

	SetLogger(nil)
	buf.Reset()
	_, err = Solve([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
