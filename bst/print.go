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
	"cmp"
	"io"

	"github.com/xlab/treeprint"
)

// EmptySlot marks a missing child in the diagram of a node that has only one
// child, so left and right stay distinguishable.
const EmptySlot = "∅"

// String renders the tree as an indented diagram, left child above right.
func (tree *Tree[K]) String() string {
	return tree.diagram().String()
}

// Fprint writes the diagram produced by String to w.
func (tree *Tree[K]) Fprint(w io.Writer) error {
	_, err := w.Write(tree.diagram().Bytes())
	return err
}

func (tree *Tree[K]) diagram() treeprint.Tree {
	if tree.root == nil {
		return treeprint.NewWithRoot(EmptySlot)
	}
	out := treeprint.NewWithRoot(tree.root.key)
	addChildren(out, tree.root)
	return out
}

func addChildren[K cmp.Ordered](branch treeprint.Tree, node *Node[K]) {
	if node.IsLeaf() {
		return
	}
	addChild(branch, node.left)
	addChild(branch, node.right)
}

func addChild[K cmp.Ordered](branch treeprint.Tree, child *Node[K]) {
	switch {
	case child == nil:
		branch.AddNode(EmptySlot)
	case child.IsLeaf():
		branch.AddNode(child.key)
	default:
		addChildren(branch.AddBranch(child.key), child)
	}
}
