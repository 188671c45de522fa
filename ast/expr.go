package ast

import "github.com/akashmaji946/pyparse/source"

// Num is a numeric literal. N holds the literal's raw surface text exactly
// as written (e.g. "0x1F", "3.14e10", "2j") — "does not evaluate
// constants beyond what the lexer already produced"; decoding a definite
// Go numeric type is left to a downstream consumer that knows which one it
// wants (int64 vs *big.Int vs float64 vs complex128).
type Num struct {
	N   any
	Rng source.Range
}

func (n *Num) Loc() source.Range { return n.Rng }
func (*Num) exprNode()           {}

func (n *Num) LocationNames() []string { return nil }

// Str is a string literal. Adjacent string literals concatenate at parse
// time into one Str node: BeginLoc is the first quote,
// EndLoc the last closing quote, Rng spans the whole run.
type Str struct {
	Value       string
	IsByte      bool // b"..." byte-string literal
	BeginLocVal source.Range
	EndLocVal   source.Range
	Rng         source.Range
}

func (s *Str) Loc() source.Range      { return s.Rng }
func (*Str) exprNode()                {}
func (s *Str) BeginLoc() source.Range { return s.BeginLocVal }
func (s *Str) EndLoc() source.Range   { return s.EndLocVal }
func (s *Str) LocationNames() []string {
	return []string{"begin_loc", "end_loc"}
}

// Name is an identifier reference. Ctx is always CtxUnset when produced by
// this parser.
type Name struct {
	Id  string
	Ctx Ctx
	Rng source.Range
}

func (n *Name) Loc() source.Range       { return n.Rng }
func (*Name) exprNode()                 {}
func (n *Name) LocationNames() []string { return nil }

// Tuple is `()`, `(e,)`, `(e1, e2, ...)`, or a bare comma-separated
// assignment target/display with no parens.
type Tuple struct {
	Elts []Expr
	Ctx  Ctx
	Rng  source.Range
}

func (t *Tuple) Loc() source.Range       { return t.Rng }
func (*Tuple) exprNode()                 {}
func (t *Tuple) LocationNames() []string { return nil }

// List is `[]` or `[e, ...]`.
type List struct {
	Elts []Expr
	Ctx  Ctx
	Rng  source.Range
}

func (l *List) Loc() source.Range       { return l.Rng }
func (*List) exprNode()                 {}
func (l *List) LocationNames() []string { return nil }

// Set is `{e, ...}` (no colon) — version.Selector.SetAndDictComprehensions
// gates this form (introduced in 2.7).
type Set struct {
	Elts []Expr
	Rng  source.Range
}

func (s *Set) Loc() source.Range       { return s.Rng }
func (*Set) exprNode()                 {}
func (s *Set) LocationNames() []string { return nil }

// Dict is `{}` or `{k: v, ...}`. ColonLocs has one range per key-value pair
// (,  "Dict: len(keys) == len(values) == len(colon_locs)").
type Dict struct {
	Keys         []Expr
	Values       []Expr
	ColonLocsVal []source.Range
	Rng          source.Range
}

func (d *Dict) Loc() source.Range            { return d.Rng }
func (*Dict) exprNode()                      {}
func (d *Dict) ColonLocs() []source.Range    { return d.ColonLocsVal }
func (d *Dict) LocationNames() []string      { return []string{"colon_locs"} }

// Repr is `` `e` ``, removed at grammar version 3.0 (version.Selector.BackquoteRepr).
type Repr struct {
	Value       Expr
	BeginLocVal source.Range
	EndLocVal   source.Range
	Rng         source.Range
}

func (r *Repr) Loc() source.Range      { return r.Rng }
func (*Repr) exprNode()                {}
func (r *Repr) BeginLoc() source.Range { return r.BeginLocVal }
func (r *Repr) EndLoc() source.Range   { return r.EndLocVal }
func (r *Repr) LocationNames() []string {
	return []string{"begin_loc", "end_loc"}
}

// BoolOp is a same-operator run of `and`/`or` folded into one node
// ("Boolean chains"). len(OpLocs) == len(Values) - 1.
type BoolOp struct {
	Op         BoolOpKind
	Values     []Expr
	OpLocsVal  []source.Range
	Rng        source.Range
}

func (b *BoolOp) Loc() source.Range        { return b.Rng }
func (*BoolOp) exprNode()                  {}
func (b *BoolOp) OpLocs() []source.Range   { return b.OpLocsVal }
func (b *BoolOp) LocationNames() []string  { return []string{"op_locs"} }

// BinOp is a left-associative binary arithmetic/bitwise expression
// (levels 5-10, right-assoc Pow at level 12). Op itself is a node
// carrying the operator token's own range ("Operator Nodes").
type BinOp struct {
	Left  Expr
	Op    Operator
	Right Expr
	Rng   source.Range
}

func (b *BinOp) Loc() source.Range      { return b.Rng }
func (*BinOp) exprNode()                {}
func (b *BinOp) OpLoc() source.Range    { return b.Op.Loc() }
func (b *BinOp) LocationNames() []string { return []string{"op.loc"} }

// UnaryOp is a prefix unary expression: `not x` (level 3), or `+x`, `-x`,
// `~x` (level 11, right-recursive).
type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
	Rng     source.Range
}

func (u *UnaryOp) Loc() source.Range       { return u.Rng }
func (*UnaryOp) exprNode()                 {}
func (u *UnaryOp) OpLoc() source.Range     { return u.Op.Loc() }
func (u *UnaryOp) LocationNames() []string { return []string{"op.loc"} }

// Lambda is `lambda [args]: body` (supplemented —  — the
// distilled spec names conditional expressions but not lambdas; Python's
// grammar places lambdef at the same precedence level as the conditional
// expression).
type Lambda struct {
	Args          *Arguments
	Body          Expr
	KeywordLocVal source.Range
	Rng           source.Range
}

func (l *Lambda) Loc() source.Range        { return l.Rng }
func (*Lambda) exprNode()                  {}
func (l *Lambda) KeywordLoc() source.Range { return l.KeywordLocVal }
func (l *Lambda) LocationNames() []string  { return []string{"keyword_loc"} }

// IfExp is the conditional expression `A if B else C`.
type IfExp struct {
	Body       Expr
	Test       Expr
	Orelse     Expr
	IfLocVal   source.Range
	ElseLocVal source.Range
	Rng        source.Range
}

func (i *IfExp) Loc() source.Range       { return i.Rng }
func (*IfExp) exprNode()                 {}
func (i *IfExp) IfLoc() source.Range     { return i.IfLocVal }
func (i *IfExp) ElseLoc() source.Range   { return i.ElseLocVal }
func (i *IfExp) LocationNames() []string { return []string{"if_loc", "else_loc"} }

// Compare is a chained comparison `a op1 b op2 c ...` ("Comparison
// chaining"). len(Ops) == len(Comparators).
type Compare struct {
	Left        Expr
	Ops         []CmpOp
	Comparators []Expr
	Rng         source.Range
}

func (c *Compare) Loc() source.Range { return c.Rng }
func (*Compare) exprNode()           {}

// OpLocs exposes each chained comparison operator's own range, mirroring
// the scenario in ("ops[0].loc=[2,3)").
func (c *Compare) OpLocs() []source.Range {
	locs := make([]source.Range, len(c.Ops))
	for i, op := range c.Ops {
		locs[i] = op.Loc()
	}
	return locs
}
func (c *Compare) LocationNames() []string { return []string{"ops[].loc"} }

// Keyword is a `name=expr` call argument ("Trailers").
type Keyword struct {
	Arg          string
	Value        Expr
	ArgLocVal    source.Range
	EqualsLocVal source.Range
	Rng          source.Range
}

func (k *Keyword) Loc() source.Range       { return k.Rng }
func (k *Keyword) ArgLoc() source.Range    { return k.ArgLocVal }
func (k *Keyword) EqualsLoc() source.Range { return k.EqualsLocVal }
func (k *Keyword) LocationNames() []string { return []string{"arg_loc", "equals_loc"} }

// Call is `func(args, kw=v, *star, **dstar)` ("Trailers").
type Call struct {
	Func        Expr
	Args        []Expr
	Keywords    []*Keyword
	Starargs    Expr // nil if absent
	Kwargs      Expr // nil if absent
	StarLocVal  source.Range
	DStarLocVal source.Range
	BeginLocVal source.Range
	EndLocVal   source.Range
	Rng         source.Range
}

func (c *Call) Loc() source.Range      { return c.Rng }
func (*Call) exprNode()                {}
func (c *Call) BeginLoc() source.Range { return c.BeginLocVal }
func (c *Call) EndLoc() source.Range   { return c.EndLocVal }
func (c *Call) StarLoc() source.Range  { return c.StarLocVal }
func (c *Call) DStarLoc() source.Range { return c.DStarLocVal }
func (c *Call) LocationNames() []string {
	names := []string{"begin_loc", "end_loc"}
	if c.Starargs != nil {
		names = append(names, "star_loc")
	}
	if c.Kwargs != nil {
		names = append(names, "dstar_loc")
	}
	return names
}

// Attribute is `value.attr` ("Trailers").
type Attribute struct {
	Value      Expr
	Attr       string
	Ctx        Ctx
	DotLocVal  source.Range
	AttrLocVal source.Range
	Rng        source.Range
}

func (a *Attribute) Loc() source.Range       { return a.Rng }
func (*Attribute) exprNode()                 {}
func (a *Attribute) DotLoc() source.Range    { return a.DotLocVal }
func (a *Attribute) AttrLoc() source.Range   { return a.AttrLocVal }
func (a *Attribute) LocationNames() []string { return []string{"dot_loc", "attr_loc"} }

// Subscript is `value[slice]` ("Trailers"). Slice is one of
// *Index, *Slice, or *ExtSlice.
type Subscript struct {
	Value       Expr
	Slice       Expr
	Ctx         Ctx
	BeginLocVal source.Range
	EndLocVal   source.Range
	Rng         source.Range
}

func (s *Subscript) Loc() source.Range      { return s.Rng }
func (*Subscript) exprNode()                {}
func (s *Subscript) BeginLoc() source.Range { return s.BeginLocVal }
func (s *Subscript) EndLoc() source.Range   { return s.EndLocVal }
func (s *Subscript) LocationNames() []string {
	return []string{"begin_loc", "end_loc"}
}

// Index is a subscript slicelist containing a single expression.
type Index struct {
	Value Expr
	Rng   source.Range
}

func (i *Index) Loc() source.Range       { return i.Rng }
func (*Index) exprNode()                 {}
func (i *Index) LocationNames() []string { return nil }

// Slice is a `lo:hi:step` subscript element. StepColonLoc is present iff a
// second colon was written, even if step itself was omitted (
// ).
type Slice struct {
	Lower             Expr // nil if omitted
	Upper             Expr // nil if omitted
	Step              Expr // nil if omitted
	BoundColonLocVal  source.Range
	HasStepColon      bool
	StepColonLocVal   source.Range
	Rng               source.Range
}

func (s *Slice) Loc() source.Range { return s.Rng }
func (*Slice) exprNode()           {}

func (s *Slice) BoundColonLoc() source.Range { return s.BoundColonLocVal }
func (s *Slice) StepColonLoc() source.Range  { return s.StepColonLocVal }
func (s *Slice) LocationNames() []string {
	names := []string{"bound_colon_loc"}
	if s.HasStepColon {
		names = append(names, "step_colon_loc")
	}
	return names
}

// ExtSlice is a comma-separated subscript slicelist of more than one
// element; each Dims entry is independently an *Index or *Slice.
type ExtSlice struct {
	Dims []Expr
	Rng  source.Range
}

func (e *ExtSlice) Loc() source.Range       { return e.Rng }
func (*ExtSlice) exprNode()                 {}
func (e *ExtSlice) LocationNames() []string { return nil }

// Comprehension is one `for target in iter (if cond)*` clause (
//  "Comprehensions"). IfLocs has one entry per attached `if` clause.
type Comprehension struct {
	Target       Expr
	Iter         Expr
	Ifs          []Expr
	ForLocVal    source.Range
	InLocVal     source.Range
	IfLocsVal    []source.Range
	Rng          source.Range
}

func (c *Comprehension) Loc() source.Range     { return c.Rng }
func (c *Comprehension) ForLoc() source.Range  { return c.ForLocVal }
func (c *Comprehension) InLoc() source.Range   { return c.InLocVal }
func (c *Comprehension) IfLocs() []source.Range { return c.IfLocsVal }
func (c *Comprehension) LocationNames() []string {
	return []string{"for_loc", "in_loc", "if_locs"}
}

// ListComp is `[elt for target in iter ...]`.
type ListComp struct {
	Elt         Expr
	Generators  []*Comprehension
	BeginLocVal source.Range
	EndLocVal   source.Range
	Rng         source.Range
}

func (l *ListComp) Loc() source.Range      { return l.Rng }
func (*ListComp) exprNode()                {}
func (l *ListComp) BeginLoc() source.Range { return l.BeginLocVal }
func (l *ListComp) EndLoc() source.Range   { return l.EndLocVal }
func (l *ListComp) LocationNames() []string {
	return []string{"begin_loc", "end_loc"}
}

// SetComp is `{elt for target in iter ...}` (supplemented, 2.7+).
type SetComp struct {
	Elt         Expr
	Generators  []*Comprehension
	BeginLocVal source.Range
	EndLocVal   source.Range
	Rng         source.Range
}

func (s *SetComp) Loc() source.Range      { return s.Rng }
func (*SetComp) exprNode()                {}
func (s *SetComp) BeginLoc() source.Range { return s.BeginLocVal }
func (s *SetComp) EndLoc() source.Range   { return s.EndLocVal }
func (s *SetComp) LocationNames() []string {
	return []string{"begin_loc", "end_loc"}
}

// DictComp is `{key: value for target in iter ...}` (supplemented, 2.7+).
type DictComp struct {
	Key           Expr
	Value         Expr
	Generators    []*Comprehension
	ColonLocVal   source.Range
	BeginLocVal   source.Range
	EndLocVal     source.Range
	Rng           source.Range
}

func (d *DictComp) Loc() source.Range      { return d.Rng }
func (*DictComp) exprNode()                {}
func (d *DictComp) ColonLoc() source.Range { return d.ColonLocVal }
func (d *DictComp) BeginLoc() source.Range { return d.BeginLocVal }
func (d *DictComp) EndLoc() source.Range   { return d.EndLocVal }
func (d *DictComp) LocationNames() []string {
	return []string{"colon_loc", "begin_loc", "end_loc"}
}

// GeneratorExp is `(elt for target in iter ...)`.
type GeneratorExp struct {
	Elt         Expr
	Generators  []*Comprehension
	BeginLocVal source.Range
	EndLocVal   source.Range
	Rng         source.Range
}

func (g *GeneratorExp) Loc() source.Range      { return g.Rng }
func (*GeneratorExp) exprNode()                {}
func (g *GeneratorExp) BeginLoc() source.Range { return g.BeginLocVal }
func (g *GeneratorExp) EndLoc() source.Range   { return g.EndLocVal }
func (g *GeneratorExp) LocationNames() []string {
	return []string{"begin_loc", "end_loc"}
}

// Yield is `(yield)` or `(yield e)`, legal only inside a parenthesized
// expression context (; bare `yield` is the statement form).
type Yield struct {
	Value         Expr // nil if bare `yield`
	KeywordLocVal source.Range
	Rng           source.Range
}

func (y *Yield) Loc() source.Range        { return y.Rng }
func (*Yield) exprNode()                  {}
func (y *Yield) KeywordLoc() source.Range { return y.KeywordLocVal }
func (y *Yield) LocationNames() []string  { return []string{"keyword_loc"} }

