// Copyright © 2026, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package topictrie implements a hierarchical key-value store that
// matches topic-style keys against stored entries using MQTT-like
// single-level and multi-level wildcards.
package topictrie

// TokenizeFunc - converts a key into an ordered sequence of tokens.
type TokenizeFunc[K any, T comparable] func(key K) ([]T, error)

// DetokenizeFunc - converts a token sequence back into a key.
type DetokenizeFunc[K any, T comparable] func(tokens []T) K

// Tokenizer - pluggable strategy that converts an opaque key into an
// ordered sequence of tokens and back. Wildcard tokens are never
// special-cased here; they are ordinary tokens that Insert and Match
// treat specially.
type Tokenizer[K any, T comparable] interface {
	Tokenize(key K) ([]T, error)
	Detokenize(tokens []T) K
}

// Trie - wildcard topic trie storing values of type V under patterns
// of tokens of type T, addressed by keys of type K.
//
// The trie provides no internal locking. Concurrent mutation
// interleaved with an in-flight Match traversal is undefined; callers
// needing shared access must impose their own exclusion.
type Trie[K any, T comparable, V any] struct {
	root      *node[T, V]
	single    T
	multi     T
	tokenizer Tokenizer[K, T]
	size      int
}

// New - creates a trie with the given wildcard tokens and a custom
// tokenizer strategy.
func New[K any, T comparable, V any](single, multi T, tokenizer Tokenizer[K, T]) *Trie[K, T, V] {
	return &Trie[K, T, V]{
		root:      newNode[T, V](),
		single:    single,
		multi:     multi,
		tokenizer: tokenizer,
	}
}

// NewStringTrie - creates a trie for string keys split on the given
// delimiter. An empty delimiter splits keys into individual characters.
func NewStringTrie[V any](single, multi, delimiter string) *Trie[string, string, V] {
	return New[string, string, V](single, multi, delimiterTokenizer{separator: delimiter})
}

// NewCharTrie - creates a trie for string keys with character-wise
// tokenization.
func NewCharTrie[V any](single, multi string) *Trie[string, string, V] {
	return NewStringTrie[V](single, multi, "")
}

// NewTokenTrie - creates a trie whose keys already are ordered token
// sequences, stored as-is.
func NewTokenTrie[T comparable, V any](single, multi T) *Trie[[]T, T, V] {
	return New[[]T, T, V](single, multi, identityTokenizer[T]{})
}

// Size returns the number of stored entries.
func (t *Trie[K, T, V]) Size() int {
	return t.size
}

// Empty reports whether the trie holds no entries.
func (t *Trie[K, T, V]) Empty() bool {
	return t.size == 0
}
