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

func TestIsBalanced(t *testing.T) {
	tests := []struct {
		name       string
		keys       []int
		balanced   bool
		wantHeight int
	}{
		{"empty", nil, true, 0},
		{"single", []int{1}, true, 1},
		{"perfect", []int{4, 2, 6, 1, 3, 5, 7}, true, 3},
		{"increasing chain", []int{1, 2, 3, 4, 5}, false, 5},
		{"two nodes", []int{2, 1}, true, 2},
		{"three node chain", []int{3, 2, 1}, false, 3},
		{"off by one", []int{4, 2, 6, 1}, true, 3},
		// Root looks fine (heights 3 and 2) but node 2 is lopsided.
		{"unbalanced below root", []int{5, 2, 8, 1, 9, 0}, false, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(tc.keys...)
			assert.Equal(t, tc.balanced, tree.IsBalanced())
			assert.Equal(t, tc.wantHeight, tree.Height())
		})
	}
}

func TestFindSecondHighest(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want int
		ok   bool
	}{
		{"empty", nil, 0, false},
		{"single", []int{5}, 0, false},
		{"max parent", []int{5, 3, 8, 1, 4, 7, 9}, 8, true},
		{"max has left subtree", []int{5, 3, 8, 1, 4, 7, 10, 9}, 9, true},
		{"root is max", []int{5, 3, 1, 4}, 4, true},
		{"root and left child", []int{5, 3}, 3, true},
		{"root and right child", []int{5, 8}, 5, true},
		{"left subtree of max is deep", []int{1, 10, 5, 7, 6}, 7, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := buildTree(tc.keys...).FindSecondHighest()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
