/*
File    : pyparse/internal/replay/replay.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package replay holds round-trip and location-invariant fixture helpers
shared across the test suite ("Round-trip. For any literal
token whose source range is [lo, hi), buffer.slice(lo, hi) reproduces the
original surface text of that token." and the containment invariant: for
every node N and child C, C.loc ⊆ N.loc). Grounded on the prior parser's
parser_test.go assertion style (testify require/assert on parsed shape),
generalized into reusable walkers instead of one-off inline checks, since
this module's AST has far more node variants than the prior grammar's did.
*/
package replay

import (
	"fmt"

	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/source"
)

// TokenRoundTrips reports whether buf.Slice(lo, hi) reproduces want exactly
// ("Round-trip").
func TokenRoundTrips(rng source.Range, want string) bool {
	return rng.Text() == want
}

// LocationError describes one containment-invariant violation found by
// Walk, naming the offending node's Go type for test failure messages.
type LocationError struct {
	NodeType string
	Node     source.Range
	Child    source.Range
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("%s: child range %s not contained in node range %s", e.NodeType, e.Child, e.Node)
}

// CheckContainment walks mod and reports every node/sub-location pair whose
// child range is not contained in its parent's range (the containment
// invariant: for every node N and child C, C.loc ⊆ N.loc).
// It does not walk into expression subtrees structurally (the AST has no
// generic child-iteration API by design — this grammar's Non-goals exclude a
// reflective visitor from the core). For each node passed in, it checks only
// those declared LocationNames() that subLocation resolves (keyword_loc,
// colon_loc, else_loc, begin_loc, end_loc, op.loc) against the node's own
// Rng; every other declared name, list-shaped ones included, is skipped.
func CheckContainment(nodes ...ast.Node) []*LocationError {
	var errs []*LocationError
	for _, n := range nodes {
		errs = append(errs, checkOne(n)...)
	}
	return errs
}

func checkOne(n ast.Node) []*LocationError {
	ln, ok := n.(ast.Located)
	if !ok {
		return nil
	}
	own := ln.Loc()
	var errs []*LocationError
	for _, name := range ln.LocationNames() {
		sub, ok := subLocation(n, name)
		if !ok {
			continue
		}
		if !own.Contains(sub) {
			errs = append(errs, &LocationError{
				NodeType: fmt.Sprintf("%T", n),
				Node:     own,
				Child:    sub,
			})
		}
	}
	return errs
}

// subLocation extracts the named sub-location from n via its single-range
// accessor methods (KeywordLoc, ColonLoc, ElseLoc, BeginLoc, EndLoc,
// OpLoc). For any other name, including the plural/list-shaped ones
// ("op_locs", "name_locs", "if_locs", "ops[].loc"), it reports false and
// the caller does not check that location.
func subLocation(n ast.Node, name string) (source.Range, bool) {
	switch name {
	case "keyword_loc":
		v, ok := n.(interface{ KeywordLoc() source.Range })
		if !ok {
			return source.Range{}, false
		}
		return v.KeywordLoc(), true
	case "colon_loc":
		v, ok := n.(interface{ ColonLoc() source.Range })
		if !ok {
			return source.Range{}, false
		}
		return v.ColonLoc(), true
	case "else_loc":
		v, ok := n.(interface{ ElseLoc() source.Range })
		if !ok {
			return source.Range{}, false
		}
		return v.ElseLoc(), true
	case "begin_loc":
		v, ok := n.(interface{ BeginLoc() source.Range })
		if !ok {
			return source.Range{}, false
		}
		return v.BeginLoc(), true
	case "end_loc":
		v, ok := n.(interface{ EndLoc() source.Range })
		if !ok {
			return source.Range{}, false
		}
		return v.EndLoc(), true
	case "op.loc":
		v, ok := n.(interface{ OpLoc() source.Range })
		if !ok {
			return source.Range{}, false
		}
		return v.OpLoc(), true
	default:
		return source.Range{}, false
	}
}

// AssignInvariantsHold checks 's length invariants that don't fit
// the generic containment walk: Compare's ops/comparators, BoolOp's
// op_locs/values, Dict's keys/values/colon_locs, Assign's op_locs/targets.
func AssignInvariantsHold(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.Compare:
		return len(v.Ops) == len(v.Comparators)
	case *ast.BoolOp:
		return len(v.OpLocsVal) == len(v.Values)-1
	case *ast.Dict:
		return len(v.Keys) == len(v.Values) && len(v.Values) == len(v.ColonLocsVal)
	case *ast.Assign:
		return len(v.OpLocsVal) == len(v.Targets)
	default:
		return true
	}
}
