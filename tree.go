// Copyright © 2026, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package topictrie

import "fmt"

// Insert stores value under the pattern obtained by tokenizing key.
// Wildcard tokens in the pattern are stored literally like any other
// token; they only gain their wildcard meaning during Match. Inserting
// the same key twice overwrites the previous value. The multi-level
// wildcard is only allowed as the final token; any other placement
// fails with ErrInvalidPattern and leaves the trie unchanged.
func (t *Trie[K, T, V]) Insert(key K, value V) error {
	tokens, err := t.tokenizer.Tokenize(key)
	if err != nil {
		return err
	}

	if err := t.validate(tokens); err != nil {
		return err
	}

	current := t.root
	for _, token := range tokens {
		current = current.childOrNew(token)
	}

	if !current.hasValue {
		t.size++
	}

	current.setValue(value)

	return nil
}

// Retrieve looks up the value stored under the exact pattern the key
// tokenizes to. Every token, wildcards included, is compared literally;
// no wildcard expansion happens. The second result is false if the
// pattern is not present. An error is only returned if the key cannot
// be tokenized.
func (t *Trie[K, T, V]) Retrieve(key K) (V, bool, error) {
	var zero V

	tokens, err := t.tokenizer.Tokenize(key)
	if err != nil {
		return zero, false, err
	}

	current := t.root
	for _, token := range tokens {
		if current = current.child(token); current == nil {
			return zero, false, nil
		}
	}

	if !current.hasValue {
		return zero, false, nil
	}

	return current.value, true, nil
}

// Delete removes the value stored under the exact pattern the key
// tokenizes to and prunes any ancestor nodes left without a value and
// without children. Returns true if a value was removed. The root is
// never pruned.
func (t *Trie[K, T, V]) Delete(key K) (bool, error) {
	tokens, err := t.tokenizer.Tokenize(key)
	if err != nil {
		return false, err
	}

	type step struct {
		parent *node[T, V]
		token  T
	}

	// Record the parent chain so pruning can walk back up.
	chain := make([]step, 0, len(tokens))
	current := t.root

	for _, token := range tokens {
		next := current.child(token)
		if next == nil {
			return false, nil
		}

		chain = append(chain, step{parent: current, token: token})
		current = next
	}

	if !current.hasValue {
		return false, nil
	}

	current.clearValue()
	t.size--

	// Prune bottom-up until a node with a value or remaining children
	// is reached. The loop never touches the root itself.
	for i := len(chain) - 1; i >= 0 && current.empty(); i-- {
		delete(chain[i].parent.children, chain[i].token)
		current = chain[i].parent
	}

	return true, nil
}

// validate rejects token sequences placing the multi-level wildcard
// anywhere but the final position.
func (t *Trie[K, T, V]) validate(tokens []T) error {
	for i, token := range tokens {
		if token == t.multi && i != len(tokens)-1 {
			return fmt.Errorf("%w: multi-level wildcard %v must be the final token", ErrInvalidPattern, token)
		}
	}

	return nil
}
