// FILE: predicate.go
// Package ticksim – the predicate evaluator (spec §4.8).

package ticksim

import "math"

// Operator is a comparison operator usable in a Predicate.
type Operator string

const (
	OpLT Operator = "<"
	OpLE Operator = "<="
	OpGT Operator = ">"
	OpGE Operator = ">="
	OpEQ Operator = "=="
	OpNE Operator = "!="
)

// Predicate compares a snapshot value against a literal or a second
// snapshot value. Exactly one of RHSValue/RHSKey is used, selected by
// RHSIsKey.
type Predicate struct {
	LHSKey   string
	Operator Operator
	UseAbs   bool
	RHSValue float64
	RHSKey   string
	RHSIsKey bool
}

// NewLiteralPredicate builds a predicate comparing lhsKey against a
// constant.
func NewLiteralPredicate(lhsKey string, op Operator, useAbs bool, rhs float64) Predicate {
	return Predicate{LHSKey: lhsKey, Operator: op, UseAbs: useAbs, RHSValue: rhs}
}

// NewKeyPredicate builds a predicate comparing lhsKey against another
// snapshot key.
func NewKeyPredicate(lhsKey string, op Operator, useAbs bool, rhsKey string) Predicate {
	return Predicate{LHSKey: lhsKey, Operator: op, UseAbs: useAbs, RHSKey: rhsKey, RHSIsKey: true}
}

// Evaluate resolves lhs from the snapshot (a miss or non-finite value
// evaluates to false), optionally takes its absolute value, resolves rhs
// the same way, and compares.
func (p Predicate) Evaluate(snap Snapshot) bool {
	lhs, ok := snap.Float(p.LHSKey)
	if !ok {
		return false
	}
	if p.UseAbs {
		lhs = math.Abs(lhs)
	}

	rhs := p.RHSValue
	if p.RHSIsKey {
		v, ok := snap.Float(p.RHSKey)
		if !ok {
			return false
		}
		rhs = v
	} else if !isFinite(rhs) {
		return false
	}

	switch p.Operator {
	case OpLT:
		return lhs < rhs
	case OpLE:
		return lhs <= rhs
	case OpGT:
		return lhs > rhs
	case OpGE:
		return lhs >= rhs
	case OpEQ:
		return lhs == rhs
	case OpNE:
		return lhs != rhs
	default:
		return false
	}
}

// PredicateList evaluates to the logical AND of its elements; an empty
// list evaluates to true.
type PredicateList []Predicate

// EvaluateAll returns true only if every predicate in the list is true.
func (pl PredicateList) EvaluateAll(snap Snapshot) bool {
	for _, p := range pl {
		if !p.Evaluate(snap) {
			return false
		}
	}
	return true
}
