// SPDX-License-Identifier: MIT

// Package wires - ordered, duplicate-free sets of wire labels.
//
// Purpose:
//   - Give every operator a single canonical notion of "which subsystems it acts on".
//   - Keep insertion order: wire order fixes the tensor-product (bit) order of matrices.
//   - Provide the set algebra used by composites and the commutation oracle
//     (union, shared wires, difference) with deterministic ordering.
//
// Determinism:
//   - No map iteration leaks into results; every output follows input order.
//
// Complexity quicksheet:
//   - New/Union: O(n) with a transient index map; Index/Contains: O(n) linear scan
//     (wire sets are tiny in practice, a scan beats hashing).
package wires

import (
	"fmt"
	"strings"
)

// Wires is an immutable ordered set of wire labels.
// The zero value is the empty set and is valid for every method.
type Wires struct {
	labels []string // unique labels in insertion order
}

// New builds a wire set from arbitrary labels. Integers and strings are the
// common cases; every label is normalised with fmt.Sprint so that New(0) and
// New("0") denote the same wire. Duplicates keep their first position.
func New(labels ...any) Wires {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		s := fmt.Sprint(l)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return Wires{labels: out}
}

// Of is New specialised to string labels.
func Of(labels ...string) Wires {
	anys := make([]any, len(labels))
	for i, l := range labels {
		anys[i] = l
	}

	return New(anys...)
}

// Range returns the wires 0..n-1.
func Range(n int) Wires {
	if n <= 0 {
		return Wires{}
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = fmt.Sprint(i)
	}

	return Wires{labels: out}
}

// Len returns the number of wires.
func (w Wires) Len() int { return len(w.labels) }

// IsEmpty reports whether the set holds no wires.
func (w Wires) IsEmpty() bool { return len(w.labels) == 0 }

// At returns the i-th label; it panics on a bad index like a slice would.
func (w Wires) At(i int) string { return w.labels[i] }

// Labels returns a copy of the labels in order.
func (w Wires) Labels() []string {
	out := make([]string, len(w.labels))
	copy(out, w.labels)

	return out
}

// Index returns the position of label in w, or -1.
func (w Wires) Index(label any) int {
	s := fmt.Sprint(label)
	for i, l := range w.labels {
		if l == s {
			return i
		}
	}

	return -1
}

// Contains reports whether label is one of the wires.
func (w Wires) Contains(label any) bool { return w.Index(label) >= 0 }

// ContainsAll reports whether every wire of other is in w.
func (w Wires) ContainsAll(other Wires) bool {
	for _, l := range other.labels {
		if w.Index(l) < 0 {
			return false
		}
	}

	return true
}

// Equal reports whether both sets hold the same labels in the same order.
func (w Wires) Equal(other Wires) bool {
	if len(w.labels) != len(other.labels) {
		return false
	}
	for i := range w.labels {
		if w.labels[i] != other.labels[i] {
			return false
		}
	}

	return true
}

// Union concatenates the sets, keeping the first occurrence of each label.
func Union(sets ...Wires) Wires {
	var all []any
	for _, s := range sets {
		for _, l := range s.labels {
			all = append(all, l)
		}
	}

	return New(all...)
}

// Shared returns the labels of a that also appear in b, in a's order.
func Shared(a, b Wires) Wires {
	out := make([]string, 0, len(a.labels))
	for _, l := range a.labels {
		if b.Index(l) >= 0 {
			out = append(out, l)
		}
	}

	return Wires{labels: out}
}

// Intersects reports whether a and b have at least one wire in common.
func Intersects(a, b Wires) bool {
	for _, l := range a.labels {
		if b.Index(l) >= 0 {
			return true
		}
	}

	return false
}

// Subtract returns the labels of w that are not in other.
func (w Wires) Subtract(other Wires) Wires {
	out := make([]string, 0, len(w.labels))
	for _, l := range w.labels {
		if other.Index(l) < 0 {
			out = append(out, l)
		}
	}

	return Wires{labels: out}
}

// Slice returns the sub-set w[i:j].
func (w Wires) Slice(i, j int) Wires {
	out := make([]string, j-i)
	copy(out, w.labels[i:j])

	return Wires{labels: out}
}

// String renders the set as "[a, b, c]".
func (w Wires) String() string {
	return "[" + strings.Join(w.labels, ", ") + "]"
}
