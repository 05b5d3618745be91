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

// DFSPreOrder returns the keys visiting each node before its left and then
// its right subtree.
func (tree *Tree[K]) DFSPreOrder() []K {
	visited := make([]K, 0, tree.size)
	preOrder(tree.root, &visited)
	return visited
}

// DFSInOrder returns the keys in ascending order.
func (tree *Tree[K]) DFSInOrder() []K {
	visited := make([]K, 0, tree.size)
	inOrder(tree.root, &visited)
	return visited
}

// DFSPostOrder returns the keys visiting both subtrees, left first, before
// the node itself.
func (tree *Tree[K]) DFSPostOrder() []K {
	visited := make([]K, 0, tree.size)
	postOrder(tree.root, &visited)
	return visited
}

func preOrder[K cmp.Ordered](node *Node[K], visited *[]K) {
	if node == nil {
		return
	}
	*visited = append(*visited, node.key)
	preOrder(node.left, visited)
	preOrder(node.right, visited)
}

func inOrder[K cmp.Ordered](node *Node[K], visited *[]K) {
	if node == nil {
		return
	}
	inOrder(node.left, visited)
	*visited = append(*visited, node.key)
	inOrder(node.right, visited)
}

func postOrder[K cmp.Ordered](node *Node[K], visited *[]K) {
	if node == nil {
		return
	}
	postOrder(node.left, visited)
	postOrder(node.right, visited)
	*visited = append(*visited, node.key)
}

// BFS returns the keys level by level, left to right within a level.
// An empty tree yields an empty slice; the queue is never seeded with a
// missing root.
func (tree *Tree[K]) BFS() []K {
	visited := make([]K, 0, tree.size)
	if tree.root == nil {
		return visited
	}

	queue := []*Node[K]{tree.root}
	for len(queue) > 0 {
		current := queue[0]
		queue[0] = nil
		queue = queue[1:]

		visited = append(visited, current.key)
		if current.left != nil {
			queue = append(queue, current.left)
		}
		if current.right != nil {
			queue = append(queue, current.right)
		}
	}
	return visited
}

// Range returns, in ascending order, every key k with low <= k < high.
func (tree *Tree[K]) Range(low, high K) []K {
	var results []K
	rangeSearch(tree.root, low, high, &results)
	return results
}

// rangeSearch only descends into subtrees that can still hold keys in
// [low, high).
func rangeSearch[K cmp.Ordered](node *Node[K], low, high K, results *[]K) {
	if node == nil {
		return
	}

	if node.key > low {
		rangeSearch(node.left, low, high, results)
	}
	if node.key >= low && node.key < high {
		*results = append(*results, node.key)
	}
	if node.key < high {
		rangeSearch(node.right, low, high, results)
	}
}
