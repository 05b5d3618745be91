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

// Remove deletes key from the tree. It returns a detached node carrying the
// removed key and true, or nil and false when the key is absent, in which
// case the tree is left untouched.
//
// A node with two children keeps its place in the tree: it takes over its
// in-order successor's key and the successor's node is the one detached.
// The returned node therefore always holds the removed key, but may not be
// the node Find returned for it earlier.
func (tree *Tree[K]) Remove(key K) (*Node[K], bool) {
	var removed *Node[K]
	tree.root, removed = removeNode(tree.root, key)
	if removed == nil {
		return nil, false
	}
	tree.size--
	return removed, true
}

// removeNode deletes key from the subtree rooted at node and returns the
// subtree's new root together with the node that was unlinked.
func removeNode[K cmp.Ordered](node *Node[K], key K) (*Node[K], *Node[K]) {
	if node == nil {
		return nil, nil // Key not found
	}

	var removed *Node[K]
	switch {
	case key < node.key:
		node.left, removed = removeNode(node.left, key)
		return node, removed
	case key > node.key:
		node.right, removed = removeNode(node.right, key)
		return node, removed
	}

	// Leaf
	if node.left == nil && node.right == nil {
		return nil, node
	}
	// Only a right child
	if node.left == nil {
		replacement := node.right
		node.right = nil
		return replacement, node
	}
	// Only a left child
	if node.right == nil {
		replacement := node.left
		node.left = nil
		return replacement, node
	}

	// Two children. The successor has no left child, so removing it from the
	// right subtree takes one of the cases above.
	successor := minNode(node.right)
	node.key = successor.key
	node.right, removed = removeNode(node.right, successor.key)
	removed.key = key
	return node, removed
}
