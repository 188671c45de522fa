/*
File    : pyparse/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Named precedence levels for 's fifteen-level cascade, purely
documentary (each level is its own mutually-recursive production in
expr_precedence.go rather than a single generic dispatch table — chained
comparisons and folded boolean chains need bespoke accumulation a uniform
left-assoc binary loop can't give them). Grounded on the prior parser's
parser_precedence.go, which names every level as a constant with a doc
comment showing an example; kept here in the same register even though the
original getPrecedence/registerBinaryFuncs dispatch machinery itself does
not transfer.
*/
package parser

// Precedence levels, lowest to highest binding (table).
const (
	levelConditional = iota // A if B else C, lambda
	levelOr                 // or
	levelAnd                // and
	levelNot                // unary not
	levelComparison         // < <= > >= == != <> in/not in is/is not, chained
	levelBitOr              // |
	levelBitXor             // ^
	levelBitAnd             // &
	levelShift              // << >>
	levelArith              // + - (binary)
	levelTerm               // * / % //
	levelUnary              // unary + - ~
	levelPower              // ** (right-assoc)
	levelTrailer            // (...) [...] .name
	levelAtom               // literals, names, grouping
)
