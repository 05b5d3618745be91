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
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styles decorates command output. The zero value prints plain text.
type styles struct {
	enabled bool
	Heading lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
}

func newStyles(color bool) styles {
	return styles{
		enabled: color,
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
	}
}

// outputStyles enables colour only when the config allows it and stdout is a
// terminal.
func outputStyles(cfg *Config) styles {
	return newStyles(cfg.Output.Color && isTerminal(os.Stdout))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s styles) heading(text string) string { return s.render(s.Heading, text) }
func (s styles) label(text string) string   { return s.render(s.Label, text) }
func (s styles) success(text string) string { return s.render(s.Success, text) }
func (s styles) notice(text string) string  { return s.render(s.Notice, text) }
func (s styles) error(text string) string   { return s.render(s.Error, text) }
func (s styles) prompt(text string) string  { return s.render(s.Prompt, text) }
