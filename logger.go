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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

var levelColors = map[string]string{
	"debug": "#3ddbd9",
	"info":  "#4589ff",
	"warn":  "#ff832b",
	"error": "#da1e28",
	"fatal": "#ff0000",
}

// newLogger builds a console logger at the given level. Unknown or empty
// levels fall back to info.
func newLogger(w io.Writer, level string, color bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(consoleWriter(w, color)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func consoleWriter(w io.Writer, color bool) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.Kitchen,
	}
	if !color {
		return cw
	}

	cw.FormatLevel = func(i any) string {
		lvl := strings.ToLower(fmt.Sprint(i))
		bg, ok := levelColors[lvl]
		if !ok {
			bg = "#8d8d8d"
		}
		short := lvl
		if len(short) > 3 {
			short = short[:3]
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(bg)).
			Padding(0, 1).
			Render(strings.ToUpper(short))
	}
	return cw
}
