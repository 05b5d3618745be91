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

// FindSecondHighest returns the second largest key. The boolean is false when
// the tree holds fewer than two keys.
func (tree *Tree[K]) FindSecondHighest() (K, bool) {
	var zero K
	if tree.root == nil || tree.root.IsLeaf() {
		return zero, false
	}

	var candidate *Node[K]
	current := tree.root
	for current.right != nil {
		candidate = current
		current = current.right
	}

	// current holds the maximum. Anything in its left subtree beats the
	// parent we walked in from.
	if current.left != nil {
		return maxNode(current.left).key, true
	}
	return candidate.key, true
}
