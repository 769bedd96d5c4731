package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roster/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a debug-level logger writing to a buffer without colors.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	require.NoError(t, lg.SetLevel("debug"))
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("seed loaded") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("unhandled command") },
			goldenName: "warn_basic",
		},
		{
			name:       "simple error",
			log:        func(lg *logger.Logger) { lg.Error(os.ErrPermission) },
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			log: func(lg *logger.Logger) {
				lg.Error(zerr.Wrap(
					zerr.Wrap(errors.New("stream closed"), "failed to read input"),
					"session failed",
				))
			},
			goldenName: "error_chain_zerr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_DefaultLevelIsWarn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)

	lg.Debug("debug message")
	lg.Info("info message")
	assert.Empty(t, buf.String())

	lg.Warn("warn message")
	assert.Equal(t, "! warn message\n", buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("visible")
	assert.Equal(t, "visible\n", buf.String())

	buf.Reset()
	require.NoError(t, lg.SetLevel("ERROR"))
	lg.Warn("hidden")
	assert.Empty(t, buf.String())

	err := lg.SetLevel("verbose")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"level":"ERROR"`)
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestCollectAndFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("simple"),
			want: "Error: simple",
		},
		{
			name: "zerr wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: "Error: outer layer\n\n  Caused by:\n    → middle layer\n    → root cause",
		},
		{
			name: "multiline messages",
			err:  zerr.Wrap(errors.New("line1\nline2"), "yaml: unmarshal errors:\n  line 3"),
			want: "Error: yaml: unmarshal errors:\n         line 3\n\n  Caused by:\n    → line1\n      line2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logger.FormatErrorEntries(logger.CollectErrorEntries(tt.err))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectErrorEntries_Messages(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.Wrap(errors.New("root cause"), "outer"))
	assert.Equal(t, []string{"outer", "root cause"}, entries)
}
