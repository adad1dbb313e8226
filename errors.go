// Copyright © 2026, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package topictrie

import "errors"

// ErrInvalidPattern is returned when a pattern places the multi-level
// wildcard anywhere but the final token position.
var ErrInvalidPattern = errors.New("invalid pattern")
