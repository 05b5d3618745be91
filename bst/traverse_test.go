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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraversals(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		pre  []int
		in   []int
		post []int
		bfs  []int
	}{
		{
			name: "empty",
			keys: nil,
			pre:  []int{},
			in:   []int{},
			post: []int{},
			bfs:  []int{},
		},
		{
			name: "single node",
			keys: []int{7},
			pre:  []int{7},
			in:   []int{7},
			post: []int{7},
			bfs:  []int{7},
		},
		{
			name: "full two levels",
			keys: []int{5, 3, 8, 1, 4, 7, 9},
			pre:  []int{5, 3, 1, 4, 8, 7, 9},
			in:   []int{1, 3, 4, 5, 7, 8, 9},
			post: []int{1, 4, 3, 7, 9, 8, 5},
			bfs:  []int{5, 3, 8, 1, 4, 7, 9},
		},
		{
			name: "right chain",
			keys: []int{1, 2, 3, 4},
			pre:  []int{1, 2, 3, 4},
			in:   []int{1, 2, 3, 4},
			post: []int{4, 3, 2, 1},
			bfs:  []int{1, 2, 3, 4},
		},
		{
			name: "zigzag",
			keys: []int{10, 5, 7, 6},
			pre:  []int{10, 5, 7, 6},
			in:   []int{5, 6, 7, 10},
			post: []int{6, 7, 5, 10},
			bfs:  []int{10, 5, 7, 6},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(tc.keys...)
			assert.Equal(t, tc.pre, tree.DFSPreOrder(), "pre-order")
			assert.Equal(t, tc.in, tree.DFSInOrder(), "in-order")
			assert.Equal(t, tc.post, tree.DFSPostOrder(), "post-order")
			assert.Equal(t, tc.bfs, tree.BFS(), "breadth-first")
		})
	}
}

func TestBFSOnEmptyTreeIsNotNil(t *testing.T) {
	var tree Tree[int]
	got := tree.BFS()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRange(t *testing.T) {
	tree := buildTree(50, 30, 70, 20, 40, 60, 80, 35, 65)

	tests := []struct {
		low, high int
		want      []int
	}{
		{0, 100, []int{20, 30, 35, 40, 50, 60, 65, 70, 80}},
		{30, 60, []int{30, 35, 40, 50}},
		{35, 36, []int{35}},
		{36, 40, nil},
		{81, 200, nil},
		{60, 60, nil},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tree.Range(tc.low, tc.high), "range [%d, %d)", tc.low, tc.high)
	}
}

func TestRangeStringPrefix(t *testing.T) {
	tree := New[string]()
	for _, key := range []string{"git status", "go build", "git commit", "ls", "git add"} {
		tree.Insert(key)
	}
	got := tree.Range("git", "git\uffff")
	assert.Equal(t, []string{"git add", "git commit", "git status"}, got)
}
