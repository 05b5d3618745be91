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

package bst

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEmptyTree(t *testing.T) {
	var tree Tree[int]
	assert.Equal(t, EmptySlot, strings.TrimSpace(tree.String()))
}

func TestStringListsEveryKeyInPreOrder(t *testing.T) {
	tree := buildTree(5, 3, 8, 1, 4, 7, 9)
	lines := strings.Split(strings.TrimRight(tree.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t, "5", lines[0])
	for i, key := range []string{"3", "1", "4", "8", "7", "9"} {
		assert.True(t, strings.HasSuffix(lines[i+1], " "+key), "line %q should end with %s", lines[i+1], key)
	}
}

func TestStringMarksMissingChild(t *testing.T) {
	tree := buildTree(5, 8)
	out := tree.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[1], EmptySlot), "left slot should be drawn empty: %q", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "8"))
}

func TestFprintMatchesString(t *testing.T) {
	tree := buildTree(2, 1, 3)
	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf))
	assert.Equal(t, tree.String(), buf.String())
}
