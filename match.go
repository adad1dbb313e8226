// Copyright © 2026, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package topictrie

import (
	"iter"
	"slices"
)

type matchMode int

const (
	// matchExact yields only the value stored at the exact pattern
	// length once the pattern is exhausted.
	matchExact matchMode = iota

	// matchPrefix yields every value in the subtree reached once the
	// pattern is exhausted.
	matchPrefix
)

// Match returns a lazy sequence of all (key, value) entries whose
// stored pattern covers the given pattern, honoring wildcard semantics
// on both sides: a stored single-level wildcard matches any query token
// at its position, a stored multi-level wildcard covers any query
// continuation, and wildcards in the query match any stored token in
// the same way. Match order is unspecified.
//
// Each call starts a fresh traversal; the sequence is finite and may be
// abandoned early with no cleanup required. Like Insert, Match rejects
// patterns placing the multi-level wildcard before the final position.
func (t *Trie[K, T, V]) Match(pattern K) (iter.Seq2[K, V], error) {
	return t.match(pattern, matchExact)
}

// MatchKeys is Match reduced to the keys of the matched entries.
func (t *Trie[K, T, V]) MatchKeys(pattern K) (iter.Seq[K], error) {
	seq, err := t.Match(pattern)
	if err != nil {
		return nil, err
	}

	return keysOf(seq), nil
}

// MatchValues is Match reduced to the values of the matched entries.
func (t *Trie[K, T, V]) MatchValues(pattern K) (iter.Seq[V], error) {
	seq, err := t.Match(pattern)
	if err != nil {
		return nil, err
	}

	return valuesOf(seq), nil
}

// Prefix behaves like Match until the pattern is exhausted, then yields
// every entry in the reached subtree instead of only the entry at the
// exact pattern length.
func (t *Trie[K, T, V]) Prefix(pattern K) (iter.Seq2[K, V], error) {
	return t.match(pattern, matchPrefix)
}

// PrefixKeys is Prefix reduced to the keys of the matched entries.
func (t *Trie[K, T, V]) PrefixKeys(pattern K) (iter.Seq[K], error) {
	seq, err := t.Prefix(pattern)
	if err != nil {
		return nil, err
	}

	return keysOf(seq), nil
}

// PrefixValues is Prefix reduced to the values of the matched entries.
func (t *Trie[K, T, V]) PrefixValues(pattern K) (iter.Seq[V], error) {
	seq, err := t.Prefix(pattern)
	if err != nil {
		return nil, err
	}

	return valuesOf(seq), nil
}

// match drives the traversal shared by Match and Prefix. It is
// iterative on an explicit work stack of (node, pattern index, path)
// frames, so deep key chains cannot exhaust the call stack and the
// caller controls pacing by pulling elements from the returned
// sequence.
func (t *Trie[K, T, V]) match(pattern K, mode matchMode) (iter.Seq2[K, V], error) {
	tokens, err := t.tokenizer.Tokenize(pattern)
	if err != nil {
		return nil, err
	}

	if err := t.validate(tokens); err != nil {
		return nil, err
	}

	return func(yield func(K, V) bool) {
		type frame struct {
			node *node[T, V]
			next int
			path []T
		}

		emit := func(path []T, value V) bool {
			return yield(t.tokenizer.Detokenize(path), value)
		}

		stack := []frame{{node: t.root, path: make([]T, 0, len(tokens))}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.next == len(tokens) {
				if mode == matchPrefix {
					if !top.node.walkSubtree(top.path, emit) {
						return
					}
				} else if top.node.hasValue {
					if !emit(top.path, top.node.value) {
						return
					}
				}

				continue
			}

			switch token := tokens[top.next]; token {
			case t.multi:
				// The pattern's multi-level wildcard covers the whole
				// remaining subtree; the branch is terminal.
				if !top.node.walkSubtree(top.path, emit) {
					return
				}
			case t.single:
				// A query wildcard matches any stored token, stored
				// wildcard tokens included.
				for childToken, child := range top.node.children {
					stack = append(stack, frame{
						node: child,
						next: top.next + 1,
						path: append(slices.Clip(top.path), childToken),
					})
				}
			default:
				// A stored multi-level wildcard holds one terminal
				// value covering any continuation.
				if child := top.node.child(t.multi); child != nil && child.hasValue {
					if !emit(append(slices.Clip(top.path), t.multi), child.value) {
						return
					}
				}

				if child := top.node.child(t.single); child != nil {
					stack = append(stack, frame{
						node: child,
						next: top.next + 1,
						path: append(slices.Clip(top.path), t.single),
					})
				}

				if child := top.node.child(token); child != nil {
					stack = append(stack, frame{
						node: child,
						next: top.next + 1,
						path: append(slices.Clip(top.path), token),
					})
				}
			}
		}
	}, nil
}

func keysOf[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range seq {
			if !yield(key) {
				return
			}
		}
	}
}

func valuesOf[K, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range seq {
			if !yield(value) {
				return
			}
		}
	}
}
