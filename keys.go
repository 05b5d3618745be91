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
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// keyParser converts one raw token into a tree key.
type keyParser[K cmp.Ordered] func(raw string) (K, error)

func parseIntKey(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer key %q", raw)
	}
	return n, nil
}

func parseStringKey(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty string key")
	}
	return raw, nil
}

// splitLine splits a session line into words, honouring shell quoting so
// string keys may contain spaces. An unquoted shell operator (; & | < >) is
// an error: the parser would otherwise stop there and drop the rest.
func splitLine(line string) ([]string, error) {
	p := shellwords.NewParser()
	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %w", line, err)
	}
	if p.Position != -1 {
		return nil, fmt.Errorf("unexpected %q in line %q (quote keys containing it)", operatorAt(line, p.Position), line)
	}
	return args, nil
}

// operatorAt returns the rune at rune index pos, the unit the parser counts in.
func operatorAt(line string, pos int) string {
	runes := []rune(line)
	if pos < 0 || pos >= len(runes) {
		return ""
	}
	return string(runes[pos])
}

func parseKeys[K cmp.Ordered](raw []string, parse keyParser[K]) ([]K, error) {
	keys := make([]K, 0, len(raw))
	for _, r := range raw {
		key, err := parse(r)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func formatKeys[K cmp.Ordered](keys []K) string {
	if len(keys) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = formatKey(key)
	}
	return strings.Join(parts, " ")
}

// shellSpecial holds the characters splitLine treats specially outside quotes.
const shellSpecial = " \"'\\;&|<>`$"

// formatKey single-quotes string keys that would not survive splitLine
// intact. An embedded single quote is written as '\'' which the parser
// reads back as a literal quote.
func formatKey[K cmp.Ordered](key K) string {
	s := fmt.Sprint(key)
	if _, isString := any(key).(string); !isString || !needsQuoting(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuoting(s string) bool {
	if strings.ContainsAny(s, shellSpecial) {
		return true
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0
}
