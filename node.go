// Copyright © 2026, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package topictrie

import "slices"

// node - the storage unit: a mapping from token to child node plus an
// optional value. A node holding a value is a terminal for the key path
// reaching it; it may be terminal and still have children, which is
// what supports keys that are prefixes of other keys.
type node[T comparable, V any] struct {
	children map[T]*node[T, V]
	value    V
	hasValue bool
}

func newNode[T comparable, V any]() *node[T, V] {
	return &node[T, V]{children: make(map[T]*node[T, V])}
}

// child returns the child stored under the given token, or nil.
func (n *node[T, V]) child(token T) *node[T, V] {
	return n.children[token]
}

// childOrNew returns the child stored under the given token, creating
// it first if absent.
func (n *node[T, V]) childOrNew(token T) *node[T, V] {
	child, ok := n.children[token]
	if !ok {
		child = newNode[T, V]()
		n.children[token] = child
	}

	return child
}

func (n *node[T, V]) setValue(value V) {
	n.value = value
	n.hasValue = true
}

func (n *node[T, V]) clearValue() {
	var zero V

	n.value = zero
	n.hasValue = false
}

// empty reports whether the node carries neither a value nor children.
// Empty non-root nodes are pruned immediately after deletion.
func (n *node[T, V]) empty() bool {
	return !n.hasValue && len(n.children) == 0
}

// walkSubtree calls yield for every value stored in the subtree rooted
// at n, n itself included. Each value is reported together with the
// token path leading to it, prefix prepended. The scan is iterative so
// deep chains cannot exhaust the call stack. Returns false if yield
// stopped the walk.
func (n *node[T, V]) walkSubtree(prefix []T, yield func(path []T, value V) bool) bool {
	type frame struct {
		node *node[T, V]
		path []T
	}

	stack := []frame{{node: n, path: prefix}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.hasValue {
			if !yield(top.path, top.node.value) {
				return false
			}
		}

		for token, child := range top.node.children {
			// Clip forces append to copy, so sibling paths never alias.
			stack = append(stack, frame{node: child, path: append(slices.Clip(top.path), token)})
		}
	}

	return true
}
