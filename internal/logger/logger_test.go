package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{"off", LevelOff, false, false},
		{"normal", LevelNormal, false, true},
		{"verbose", LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)

			log.Debug("debug %d", 1)
			log.Info("info %d", 2)

			out := buf.String()
			require.Equal(t, tt.wantDebug, strings.Contains(out, "debug 1"))
			require.Equal(t, tt.wantInfo, strings.Contains(out, "info 2"))
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)

	log.Warn("hidden")
	require.Empty(t, buf.String())

	log.SetLevel(LevelNormal)
	require.Equal(t, LevelNormal, log.GetLevel())

	log.Error("shown %s", "now")
	require.Contains(t, buf.String(), "shown now")
	require.Contains(t, buf.String(), "ERROR")
}
