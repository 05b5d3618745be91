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

// Package bst implements an unbalanced binary search tree over ordered keys.
//
// Keys are unique: every key in a node's left subtree is smaller than the
// node's key and every key in its right subtree is larger. The tree never
// rebalances itself, so its shape depends entirely on insertion order.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must guard it with their own lock.
package bst

import "cmp"

// Tree is a binary search tree. The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// NewWithRoot returns a tree holding a single node with the given key.
func NewWithRoot[K cmp.Ordered](key K) *Tree[K] {
	return &Tree[K]{root: newNode(key), size: 1}
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.size
}

// Clear drops every node.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.size = 0
}

// Insert adds key to the tree without recursion. It returns the tree and
// true when a node was added. When key is already present nothing changes
// and the boolean is false.
func (tree *Tree[K]) Insert(key K) (*Tree[K], bool) {
	if tree.root == nil {
		tree.root = newNode(key)
		tree.size++
		return tree, true
	}

	current := tree.root
	for {
		switch {
		case key < current.key:
			if current.left == nil {
				current.left = newNode(key)
				tree.size++
				return tree, true
			}
			current = current.left
		case key > current.key:
			if current.right == nil {
				current.right = newNode(key)
				tree.size++
				return tree, true
			}
			current = current.right
		default:
			return tree, false
		}
	}
}

// InsertRecursively behaves exactly like Insert but descends by recursion.
func (tree *Tree[K]) InsertRecursively(key K) (*Tree[K], bool) {
	if tree.root == nil {
		tree.root = newNode(key)
		tree.size++
		return tree, true
	}
	if !insertNode(tree.root, key) {
		return tree, false
	}
	tree.size++
	return tree, true
}

// insertNode attaches key below node, which must not be nil.
func insertNode[K cmp.Ordered](node *Node[K], key K) bool {
	switch {
	case key < node.key:
		if node.left == nil {
			node.left = newNode(key)
			return true
		}
		return insertNode(node.left, key)
	case key > node.key:
		if node.right == nil {
			node.right = newNode(key)
			return true
		}
		return insertNode(node.right, key)
	default:
		return false
	}
}

// Find returns the node holding key, searching without recursion.
func (tree *Tree[K]) Find(key K) (*Node[K], bool) {
	current := tree.root
	for current != nil {
		switch {
		case key < current.key:
			current = current.left
		case key > current.key:
			current = current.right
		default:
			return current, true
		}
	}
	return nil, false
}

// FindRecursively returns the node holding key, searching by recursion.
func (tree *Tree[K]) FindRecursively(key K) (*Node[K], bool) {
	return findNode(tree.root, key)
}

func findNode[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false
	}

	if key < node.key {
		return findNode(node.left, key)
	} else if key > node.key {
		return findNode(node.right, key)
	}
	return node, true
}

// Contains reports whether key is in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	_, ok := tree.Find(key)
	return ok
}

// Min returns the smallest key. The boolean is false for an empty tree.
func (tree *Tree[K]) Min() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return minNode(tree.root).key, true
}

// Max returns the largest key. The boolean is false for an empty tree.
func (tree *Tree[K]) Max() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return maxNode(tree.root).key, true
}
