// Copyright © 2026, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package topictrie

import (
	"slices"
	"strings"
)

// NewTokenizer wraps a pair of functions into a Tokenizer. The trie
// imposes no constraint beyond round-trippability: Detokenize(Tokenize(k))
// need not equal k exactly, but keys reported by Match must remain
// meaningful to the caller.
func NewTokenizer[K any, T comparable](tokenize TokenizeFunc[K, T], detokenize DetokenizeFunc[K, T]) Tokenizer[K, T] {
	return funcTokenizer[K, T]{tokenize: tokenize, detokenize: detokenize}
}

type funcTokenizer[K any, T comparable] struct {
	tokenize   TokenizeFunc[K, T]
	detokenize DetokenizeFunc[K, T]
}

func (f funcTokenizer[K, T]) Tokenize(key K) ([]T, error) {
	return f.tokenize(key)
}

func (f funcTokenizer[K, T]) Detokenize(tokens []T) K {
	return f.detokenize(tokens)
}

// delimiterTokenizer splits string keys on a fixed separator. An empty
// separator splits the key into its individual characters.
type delimiterTokenizer struct {
	separator string
}

func (d delimiterTokenizer) Tokenize(key string) ([]string, error) {
	return strings.Split(key, d.separator), nil
}

func (d delimiterTokenizer) Detokenize(tokens []string) string {
	return strings.Join(tokens, d.separator)
}

// identityTokenizer treats the key as an already ordered token
// sequence. Token atomicity is guaranteed by the type system.
type identityTokenizer[T comparable] struct{}

func (identityTokenizer[T]) Tokenize(key []T) ([]T, error) {
	return key, nil
}

func (identityTokenizer[T]) Detokenize(tokens []T) []T {
	// Cloned so callers cannot alias traversal-internal path slices.
	return slices.Clone(tokens)
}
