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

import "cmp"

// IsBalanced reports whether, at every node, the heights of the left and
// right subtrees differ by at most one. An empty tree is balanced.
func (tree *Tree[K]) IsBalanced() bool {
	balanced, _ := checkBalanced(tree.root)
	return balanced
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (tree *Tree[K]) Height() int {
	_, height := checkBalanced(tree.root)
	return height
}

// checkBalanced computes balance and height together in one post-order pass.
func checkBalanced[K cmp.Ordered](node *Node[K]) (bool, int) {
	if node == nil {
		return true, 0
	}

	leftBalanced, leftHeight := checkBalanced(node.left)
	rightBalanced, rightHeight := checkBalanced(node.right)

	diff := leftHeight - rightHeight
	if diff < 0 {
		diff = -diff
	}

	balanced := leftBalanced && rightBalanced && diff <= 1
	return balanced, max(leftHeight, rightHeight) + 1
}
