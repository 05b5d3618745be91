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

// Node is a single element of a Tree. A node owns its children outright;
// there are no parent links and no subtree is ever shared.
type Node[K cmp.Ordered] struct {
	key   K
	left  *Node[K]
	right *Node[K]
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the left child, or nil when the slot is empty.
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns the right child, or nil when the slot is empty.
func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// IsLeaf reports whether the node has no children.
func (n *Node[K]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

func minNode[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func maxNode[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.right != nil {
		node = node.right
	}
	return node
}
