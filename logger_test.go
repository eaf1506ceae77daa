package fedskew_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/fedskew"
	"github.com/stretchr/testify/assert"
)

func capturedLogger() (*fedskew.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return fedskew.NewLogger(handler), &buf
}

func TestLogger_LogDistribute(t *testing.T) {
	logger, buf := capturedLogger()

	logger.WithClients(2).WithRows(10).LogDistribute(context.Background(), 3, nil)

	out := buf.String()
	assert.Contains(t, out, `"msg":"distribute completed"`)
	assert.Contains(t, out, `"clients":2`)
	assert.Contains(t, out, `"rows":10`)
	assert.Contains(t, out, `"k":3`)
}

func TestLogger_LogDistributeError(t *testing.T) {
	logger, buf := capturedLogger()

	logger.WithClients(2).WithRows(10).LogDistribute(context.Background(), 3, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"distribute failed"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestLogger_LogCandidateSkipped(t *testing.T) {
	logger, buf := capturedLogger()

	logger.WithK(4).LogCandidateSkipped(context.Background(), errors.New("degenerate"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"candidate k skipped"`)
	assert.Contains(t, out, `"k":4`)
	assert.Contains(t, out, `"reason":"degenerate"`)
}

func TestLogger_LogEmptyClients(t *testing.T) {
	logger, buf := capturedLogger()

	logger.WithClients(5).LogEmptyClients(context.Background(), 2, 3)

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"clients":5`)
	assert.Contains(t, out, `"empty":3`)
}
