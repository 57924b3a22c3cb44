package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/phonebook/pkg/log"
)

func TestLogger_Info_WritesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(log.LevelInfo, log.WithOutput(buf))

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "abc"})
	logger.
		WithField("personID", "42").
		WithError(errors.New("boom")).
		Info(ctx, "person deleted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "person deleted", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "abc", entry["requestID"])
	assert.Equal(t, "42", entry["personID"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_Debug_SkippedBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(log.LevelWarn, log.WithOutput(buf))

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	logger.Error(context.Background(), "shown")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, log.ParseLevel("debug"))
	assert.Equal(t, log.LevelError, log.ParseLevel(" ERROR "))
	assert.Equal(t, log.LevelDisabled, log.ParseLevel("disabled"))
	assert.Equal(t, log.LevelInfo, log.ParseLevel("verbose"))
}
