// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		logger := newLogger(&bytes.Buffer{}, tc.level, false)
		assert.Equal(t, tc.want, logger.GetLevel(), "level %q", tc.level)
	}
}

func TestNewLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", false)

	logger.Debug().Msg("hidden")
	logger.Warn().Str("key", "7").Msg("skipping duplicate key")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "skipping duplicate key")
	assert.Contains(t, out, "key=7")
	assert.Contains(t, out, "WRN")
}

func TestConsoleWriterColorBadge(t *testing.T) {
	cw := consoleWriter(&bytes.Buffer{}, true)
	assert.NotNil(t, cw.FormatLevel)

	cw = consoleWriter(&bytes.Buffer{}, false)
	assert.Nil(t, cw.FormatLevel)
	assert.True(t, cw.NoColor)
}
