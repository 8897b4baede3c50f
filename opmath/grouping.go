// SPDX-License-Identifier: MIT
// Package opmath - term grouping engine.
//
// Purpose:
//   - Accumulate like terms of a linear combination under their structural hash.
//
// Layout:
//   - An arena of accumulator records plus an index from canonical key to arena
//     slot. The arena keeps first-insertion order, so output order is
//     deterministic and follows the input.
//
// Complexity:
//   - add: O(depth of nested SProds + len(hash)); emission: O(records).

package opmath

import (
	"math/cmplx"

	"github.com/katalvlaran/qlath/operator"
)

// termRecord accumulates the coefficient of one distinct operator.
type termRecord struct {
	coeff complex128
	rep   operator.Operator // first operator seen under this key
}

// termGrouping is an ordered map from Operator.Hash to termRecord.
type termGrouping struct {
	records []termRecord
	index   map[string]int
}

func newTermGrouping(hint int) *termGrouping {
	return &termGrouping{
		records: make([]termRecord, 0, hint),
		index:   make(map[string]int, hint),
	}
}

// add folds nested scalar products into coeff and accumulates under the base's hash.
func (g *termGrouping) add(op operator.Operator, coeff complex128) {
	for {
		sp, ok := op.(*SProd)
		if !ok {
			break
		}
		coeff *= sp.scalar
		op = sp.base
	}
	key := op.Hash()
	if i, ok := g.index[key]; ok {
		g.records[i].coeff += coeff
		return
	}
	g.index[key] = len(g.records)
	g.records = append(g.records, termRecord{coeff: coeff, rep: op})
}

// summands applies the emission rule: coefficient exactly 1 gives the bare
// operator, |coeff| > cutoff gives coeff·op, anything else is dropped.
func (g *termGrouping) summands(cutoff float64) []operator.Operator {
	out := make([]operator.Operator, 0, len(g.records))
	for _, r := range g.records {
		switch {
		case r.coeff == 1:
			out = append(out, r.rep)
		case cmplx.Abs(r.coeff) > cutoff:
			out = append(out, NewSProd(r.coeff, r.rep))
		}
	}

	return out
}

// weighted returns the surviving (coefficient, operator) pairs.
func (g *termGrouping) weighted(cutoff float64) ([]complex128, []operator.Operator) {
	coeffs := make([]complex128, 0, len(g.records))
	ops := make([]operator.Operator, 0, len(g.records))
	for _, r := range g.records {
		if cmplx.Abs(r.coeff) > cutoff {
			coeffs = append(coeffs, r.coeff)
			ops = append(ops, r.rep)
		}
	}

	return coeffs, ops
}

// weightedTerm is one pending entry of the flattening worklist.
type weightedTerm struct {
	coeff complex128
	op    operator.Operator
}

// collect flattens nested sums with an explicit stack, simplifies every leaf and
// groups the results.
//
// Implementation:
//   - Stage 1: push the inputs in reverse so pops follow input order.
//   - Stage 2: a *Sum or *Hamiltonian pops into its children (weights multiplied);
//     any other operator is simplified once. A simplified result that is itself a
//     sum already holds simplified, flat children, which are grouped directly.
//   - Stage 3: leaves go to the grouping engine.
//
// The stack replaces recursion on nesting depth; each node is expanded once.
func collect(items []weightedTerm) *termGrouping {
	g := newTermGrouping(len(items))
	stack := make([]weightedTerm, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, items[i])
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if children, ok := expand(it); ok {
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
			continue
		}
		s := it.op.Simplify()
		if children, ok := expand(weightedTerm{coeff: it.coeff, op: s}); ok {
			for _, c := range children {
				g.add(c.op, c.coeff)
			}
			continue
		}
		g.add(s, it.coeff)
	}

	return g
}

// expand returns the weighted children of sum-like nodes.
func expand(it weightedTerm) ([]weightedTerm, bool) {
	switch v := it.op.(type) {
	case *Sum:
		out := make([]weightedTerm, len(v.summands))
		for i, s := range v.summands {
			out[i] = weightedTerm{coeff: it.coeff, op: s}
		}

		return out, true
	case *Hamiltonian:
		out := make([]weightedTerm, len(v.ops))
		for i, s := range v.ops {
			out[i] = weightedTerm{coeff: it.coeff * v.coeffs[i], op: s}
		}

		return out, true
	default:
		return nil, false
	}
}
