// SPDX-License-Identifier: MIT
// Package commute - the static commutation table.
//
// Operators are keyed by (Kind, adjoint flag). A group lists operators that
// pairwise commute on shared target wires; membership is looked up as
// "a commutes with b" iff a is in table[b]. The pseudo-key ctrl stands for a
// control wire (it behaves like a projector, i.e. Z-diagonal).
//
// The table is built once at package init and never mutated.

package commute

import "github.com/katalvlaran/qlath/operator"

type entry struct {
	kind    operator.Kind
	adjoint bool
}

// ctrlKind is the pseudo-kind of a control wire.
const ctrlKind operator.Kind = -1

var ctrl = entry{kind: ctrlKind}

func plain(k operator.Kind) entry { return entry{kind: k} }
func dagger(k operator.Kind) entry { return entry{kind: k, adjoint: true} }

var (
	paulizGroup = []entry{
		plain(operator.KindPauliZ), ctrl,
		plain(operator.KindS), dagger(operator.KindS),
		plain(operator.KindT), dagger(operator.KindT),
		plain(operator.KindRZ), plain(operator.KindPhaseShift), plain(operator.KindMultiRZ),
		plain(operator.KindIdentity), plain(operator.KindU1), plain(operator.KindIsingZZ),
	}
	swapGroup = []entry{
		plain(operator.KindSWAP), plain(operator.KindIdentity),
		plain(operator.KindISWAP), dagger(operator.KindISWAP),
		plain(operator.KindSISWAP), dagger(operator.KindSISWAP),
	}
	paulixGroup = []entry{
		plain(operator.KindPauliX), plain(operator.KindSX), dagger(operator.KindSX),
		plain(operator.KindRX), plain(operator.KindIdentity), plain(operator.KindIsingXX),
	}
	pauliyGroup = []entry{
		plain(operator.KindPauliY), plain(operator.KindRY), plain(operator.KindIdentity), plain(operator.KindIsingYY),
	}
	// identityOnly kinds commute with Identity and themselves only.
	identityOnly = []operator.Kind{operator.KindHadamard, operator.KindU2, operator.KindU3, operator.KindRot}
)

// targetKind maps controlled kinds to the kind of their target action.
var targetKind = map[operator.Kind]operator.Kind{
	operator.KindCNOT:                 operator.KindPauliX,
	operator.KindCZ:                   operator.KindPauliZ,
	operator.KindCY:                   operator.KindPauliY,
	operator.KindCSWAP:                operator.KindSWAP,
	operator.KindToffoli:              operator.KindPauliX,
	operator.KindControlledPhaseShift: operator.KindPhaseShift,
	operator.KindCRX:                  operator.KindRX,
	operator.KindCRY:                  operator.KindRY,
	operator.KindCRZ:                  operator.KindRZ,
	operator.KindCRot:                 operator.KindRot,
	operator.KindMultiControlledX:     operator.KindPauliX,
}

type entrySet map[entry]struct{}

var commutationTable = buildTable()

func buildTable() map[entry]entrySet {
	table := make(map[entry]entrySet)
	all := make(entrySet)
	for _, group := range [][]entry{paulixGroup, pauliyGroup, paulizGroup, swapGroup} {
		set := make(entrySet, len(group))
		for _, e := range group {
			set[e] = struct{}{}
			all[e] = struct{}{}
		}
		for _, e := range group {
			table[e] = set
		}
	}
	for _, k := range identityOnly {
		e := plain(k)
		table[e] = entrySet{e: {}, plain(operator.KindIdentity): {}}
		all[e] = struct{}{}
	}
	table[plain(operator.KindIdentity)] = all

	return table
}

// lookup reports whether a commutes with b; known is false when b has no entry.
func lookup(a, b entry) (commutes, known bool) {
	set, ok := commutationTable[b]
	if !ok {
		return false, false
	}
	_, commutes = set[a]

	return commutes, true
}

// targetEntry returns the table key of the target action of e.
func targetEntry(e *operator.Elementary) entry {
	k := e.Kind()
	if t, ok := targetKind[k]; ok {
		k = t
	}

	return entry{kind: k, adjoint: e.IsAdjoint()}
}
