package ast

import "github.com/akashmaji946/pyparse/source"

// Module is the root node produced by the top-level `file_input()` driver.
type Module struct {
	Body []Stmt
	Rng  source.Range
}

func (m *Module) Loc() source.Range { return m.Rng }

// ExprStmt is a bare expression used as a statement ("Expression statement"):
// `Expr{value}`.
type ExprStmt struct {
	Value Expr
	Rng   source.Range
}

func (e *ExprStmt) Loc() source.Range { return e.Rng }
func (*ExprStmt) stmtNode()           {}

// Assign is `a = b = ... = v`. len(OpLocs) == len(Targets), one range per
// `=` token, left to right.
type Assign struct {
	Targets   []Expr
	Value     Expr
	OpLocsVal []source.Range
	Rng       source.Range
}

func (a *Assign) Loc() source.Range       { return a.Rng }
func (*Assign) stmtNode()                 {}
func (a *Assign) OpLocs() []source.Range  { return a.OpLocsVal }
func (a *Assign) LocationNames() []string { return []string{"op_locs"} }

// AugAssign is `lhs OP= rhs`. Op.Loc() covers the full compound symbol.
type AugAssign struct {
	Target Expr
	Op     AugOperator
	Value  Expr
	Rng    source.Range
}

func (a *AugAssign) Loc() source.Range       { return a.Rng }
func (*AugAssign) stmtNode()                 {}
func (a *AugAssign) OpLoc() source.Range     { return a.Op.Loc() }
func (a *AugAssign) LocationNames() []string { return []string{"op.loc"} }

// Pass is the `pass` statement.
type Pass struct {
	KeywordLocVal source.Range
	Rng           source.Range
}

func (p *Pass) Loc() source.Range        { return p.Rng }
func (*Pass) stmtNode()                  {}
func (p *Pass) KeywordLoc() source.Range { return p.KeywordLocVal }
func (p *Pass) LocationNames() []string  { return []string{"keyword_loc"} }

// Break is the `break` statement.
type Break struct {
	KeywordLocVal source.Range
	Rng           source.Range
}

func (b *Break) Loc() source.Range        { return b.Rng }
func (*Break) stmtNode()                  {}
func (b *Break) KeywordLoc() source.Range { return b.KeywordLocVal }
func (b *Break) LocationNames() []string  { return []string{"keyword_loc"} }

// Continue is the `continue` statement.
type Continue struct {
	KeywordLocVal source.Range
	Rng           source.Range
}

func (c *Continue) Loc() source.Range        { return c.Rng }
func (*Continue) stmtNode()                  {}
func (c *Continue) KeywordLoc() source.Range { return c.KeywordLocVal }
func (c *Continue) LocationNames() []string  { return []string{"keyword_loc"} }

// Return is `return [value]`.
type Return struct {
	Value         Expr // nil for bare `return`
	KeywordLocVal source.Range
	Rng           source.Range
}

func (r *Return) Loc() source.Range        { return r.Rng }
func (*Return) stmtNode()                  {}
func (r *Return) KeywordLoc() source.Range { return r.KeywordLocVal }
func (r *Return) LocationNames() []string  { return []string{"keyword_loc"} }

// Raise is `raise [exc [, inst [, tback]]]` (the 2.x three-argument form;
// supplemented per ).
type Raise struct {
	Exc           Expr // nil for bare `raise`
	Inst          Expr
	Tback         Expr
	KeywordLocVal source.Range
	Rng           source.Range
}

func (r *Raise) Loc() source.Range        { return r.Rng }
func (*Raise) stmtNode()                  {}
func (r *Raise) KeywordLoc() source.Range { return r.KeywordLocVal }
func (r *Raise) LocationNames() []string  { return []string{"keyword_loc"} }

// Global is `global name, name, ...` (supplemented). NameLocs mirrors
// ColonLocs/OpLocs style: one range per listed name.
type Global struct {
	Names         []string
	NameLocsVal   []source.Range
	KeywordLocVal source.Range
	Rng           source.Range
}

func (g *Global) Loc() source.Range          { return g.Rng }
func (*Global) stmtNode()                     {}
func (g *Global) KeywordLoc() source.Range    { return g.KeywordLocVal }
func (g *Global) NameLocs() []source.Range    { return g.NameLocsVal }
func (g *Global) LocationNames() []string     { return []string{"keyword_loc", "name_locs"} }

// Nonlocal is `nonlocal name, name, ...`, gated by
// version.Selector.NonlocalAllowed (supplemented, 3.0+).
type Nonlocal struct {
	Names         []string
	NameLocsVal   []source.Range
	KeywordLocVal source.Range
	Rng           source.Range
}

func (n *Nonlocal) Loc() source.Range       { return n.Rng }
func (*Nonlocal) stmtNode()                 {}
func (n *Nonlocal) KeywordLoc() source.Range { return n.KeywordLocVal }
func (n *Nonlocal) NameLocs() []source.Range { return n.NameLocsVal }
func (n *Nonlocal) LocationNames() []string  { return []string{"keyword_loc", "name_locs"} }

// Assert is `assert test [, msg]` (supplemented).
type Assert struct {
	Test          Expr
	Msg           Expr // nil if absent
	KeywordLocVal source.Range
	Rng           source.Range
}

func (a *Assert) Loc() source.Range        { return a.Rng }
func (*Assert) stmtNode()                  {}
func (a *Assert) KeywordLoc() source.Range { return a.KeywordLocVal }
func (a *Assert) LocationNames() []string  { return []string{"keyword_loc"} }

// Del is `del target, target, ...` (supplemented).
type Del struct {
	Targets       []Expr
	KeywordLocVal source.Range
	Rng           source.Range
}

func (d *Del) Loc() source.Range        { return d.Rng }
func (*Del) stmtNode()                  {}
func (d *Del) KeywordLoc() source.Range { return d.KeywordLocVal }
func (d *Del) LocationNames() []string  { return []string{"keyword_loc"} }

// Print is the Python-2 `print [>> dest,] [value, ...] [,]` statement
// (supplemented, gated by version.Selector.PrintIsStatement).
type Print struct {
	Dest          Expr // nil unless `print >> dest, ...` was used
	Values        []Expr
	Nl            bool // false if the statement ends with a trailing comma (suppress newline)
	KeywordLocVal source.Range
	Rng           source.Range
}

func (p *Print) Loc() source.Range        { return p.Rng }
func (*Print) stmtNode()                  {}
func (p *Print) KeywordLoc() source.Range { return p.KeywordLocVal }
func (p *Print) LocationNames() []string  { return []string{"keyword_loc"} }

// Exec is the Python-2 `exec body [in globals [, locals]]` statement
// (supplemented, gated by version.Selector.ExecIsStatement).
type Exec struct {
	Body          Expr
	Globals       Expr // nil if absent
	Locals        Expr // nil if absent
	KeywordLocVal source.Range
	Rng           source.Range
}

func (e *Exec) Loc() source.Range        { return e.Rng }
func (*Exec) stmtNode()                  {}
func (e *Exec) KeywordLoc() source.Range { return e.KeywordLocVal }
func (e *Exec) LocationNames() []string  { return []string{"keyword_loc"} }

// Import is `import name [as asname], ...` (supplemented).
type Import struct {
	Names         []*Alias
	KeywordLocVal source.Range
	Rng           source.Range
}

func (i *Import) Loc() source.Range        { return i.Rng }
func (*Import) stmtNode()                  {}
func (i *Import) KeywordLoc() source.Range { return i.KeywordLocVal }
func (i *Import) LocationNames() []string  { return []string{"keyword_loc"} }

// ImportFrom is `from [dots]module import name [as asname], ...` or
// `from module import *` (supplemented). Level counts leading dots for
// relative imports.
type ImportFrom struct {
	Module        string // "" for a pure relative `from . import x`
	Names         []*Alias
	Level         int
	IsStar        bool
	FromLocVal    source.Range
	ImportLocVal  source.Range
	Rng           source.Range
}

func (i *ImportFrom) Loc() source.Range         { return i.Rng }
func (*ImportFrom) stmtNode()                   {}
func (i *ImportFrom) FromLoc() source.Range     { return i.FromLocVal }
func (i *ImportFrom) ImportLoc() source.Range   { return i.ImportLocVal }
func (i *ImportFrom) LocationNames() []string   { return []string{"from_loc", "import_loc"} }

// If is `if test: body [elif test: body]* [else: orelse]`.
// A chained elif is represented as a single-statement Orelse containing
// another *If, the conventional desugaring original_source/pyparser also
// uses.
type If struct {
	Test          Expr
	Body          []Stmt
	Orelse        []Stmt
	KeywordLocVal source.Range
	ColonLocVal   source.Range
	ElseLocVal    source.Range // zero if no else/elif clause
	Rng           source.Range
}

func (i *If) Loc() source.Range        { return i.Rng }
func (*If) stmtNode()                  {}
func (i *If) KeywordLoc() source.Range { return i.KeywordLocVal }
func (i *If) ColonLoc() source.Range   { return i.ColonLocVal }
func (i *If) ElseLoc() source.Range    { return i.ElseLocVal }
func (i *If) LocationNames() []string {
	names := []string{"keyword_loc", "colon_loc"}
	if len(i.Orelse) > 0 {
		names = append(names, "else_loc")
	}
	return names
}

// While is `while test: body [else: orelse]`.
type While struct {
	Test          Expr
	Body          []Stmt
	Orelse        []Stmt
	KeywordLocVal source.Range
	ColonLocVal   source.Range
	ElseLocVal    source.Range
	Rng           source.Range
}

func (w *While) Loc() source.Range        { return w.Rng }
func (*While) stmtNode()                  {}
func (w *While) KeywordLoc() source.Range { return w.KeywordLocVal }
func (w *While) ColonLoc() source.Range   { return w.ColonLocVal }
func (w *While) ElseLoc() source.Range    { return w.ElseLocVal }
func (w *While) LocationNames() []string {
	names := []string{"keyword_loc", "colon_loc"}
	if len(w.Orelse) > 0 {
		names = append(names, "else_loc")
	}
	return names
}

// For is `for target in iter: body [else: orelse]`.
type For struct {
	Target        Expr
	Iter          Expr
	Body          []Stmt
	Orelse        []Stmt
	KeywordLocVal source.Range
	InLocVal      source.Range
	ColonLocVal   source.Range
	ElseLocVal    source.Range
	Rng           source.Range
}

func (f *For) Loc() source.Range        { return f.Rng }
func (*For) stmtNode()                  {}
func (f *For) KeywordLoc() source.Range { return f.KeywordLocVal }
func (f *For) InLoc() source.Range      { return f.InLocVal }
func (f *For) ColonLoc() source.Range   { return f.ColonLocVal }
func (f *For) ElseLoc() source.Range    { return f.ElseLocVal }
func (f *For) LocationNames() []string {
	names := []string{"keyword_loc", "in_loc", "colon_loc"}
	if len(f.Orelse) > 0 {
		names = append(names, "else_loc")
	}
	return names
}

// With is `with item [, item]*: body` (; multiple items gated
// by version.Selector.MultiContextWith).
type With struct {
	Items         []*WithItem
	Body          []Stmt
	KeywordLocVal source.Range
	ColonLocVal   source.Range
	Rng           source.Range
}

func (w *With) Loc() source.Range        { return w.Rng }
func (*With) stmtNode()                  {}
func (w *With) KeywordLoc() source.Range { return w.KeywordLocVal }
func (w *With) ColonLoc() source.Range   { return w.ColonLocVal }
func (w *With) LocationNames() []string  { return []string{"keyword_loc", "colon_loc"} }

// Try is `try: body (except ...: ...)* [else: orelse] [finally: finalbody]`.
type Try struct {
	Body            []Stmt
	Handlers        []*ExceptHandler
	Orelse          []Stmt
	Finalbody       []Stmt
	KeywordLocVal   source.Range
	ColonLocVal     source.Range
	ElseLocVal      source.Range
	FinallyLocVal   source.Range
	FinallyColonVal source.Range
	Rng             source.Range
}

func (t *Try) Loc() source.Range          { return t.Rng }
func (*Try) stmtNode()                    {}
func (t *Try) KeywordLoc() source.Range   { return t.KeywordLocVal }
func (t *Try) ColonLoc() source.Range     { return t.ColonLocVal }
func (t *Try) ElseLoc() source.Range      { return t.ElseLocVal }
func (t *Try) FinallyLoc() source.Range   { return t.FinallyLocVal }
func (t *Try) LocationNames() []string {
	names := []string{"keyword_loc", "colon_loc"}
	if len(t.Orelse) > 0 {
		names = append(names, "else_loc")
	}
	if len(t.Finalbody) > 0 {
		names = append(names, "finally_loc")
	}
	return names
}

// FunctionDef is `[@decorator]* def name(args): body`.
type FunctionDef struct {
	Name          string
	Args          *Arguments
	Body          []Stmt
	Decorators    []Expr
	KeywordLocVal source.Range
	NameLocVal    source.Range
	ColonLocVal   source.Range
	Rng           source.Range
}

func (f *FunctionDef) Loc() source.Range        { return f.Rng }
func (*FunctionDef) stmtNode()                  {}
func (f *FunctionDef) KeywordLoc() source.Range { return f.KeywordLocVal }
func (f *FunctionDef) NameLoc() source.Range    { return f.NameLocVal }
func (f *FunctionDef) ColonLoc() source.Range   { return f.ColonLocVal }
func (f *FunctionDef) LocationNames() []string {
	return []string{"keyword_loc", "name_loc", "colon_loc"}
}

// ClassDef is `[@decorator]* class name [(bases)]: body`.
type ClassDef struct {
	Name          string
	Bases         []Expr
	Keywords      []*Keyword // Python-3 metaclass=/keyword bases; empty pre-3.0
	Body          []Stmt
	Decorators    []Expr
	KeywordLocVal source.Range
	NameLocVal    source.Range
	ColonLocVal   source.Range
	BeginLocVal   source.Range // '(' of the base-class list, zero if no parens
	EndLocVal     source.Range // ')' of the base-class list, zero if no parens
	Rng           source.Range
}

func (c *ClassDef) Loc() source.Range        { return c.Rng }
func (*ClassDef) stmtNode()                  {}
func (c *ClassDef) KeywordLoc() source.Range { return c.KeywordLocVal }
func (c *ClassDef) NameLoc() source.Range    { return c.NameLocVal }
func (c *ClassDef) ColonLoc() source.Range   { return c.ColonLocVal }
func (c *ClassDef) BeginLoc() source.Range   { return c.BeginLocVal }
func (c *ClassDef) EndLoc() source.Range     { return c.EndLocVal }
func (c *ClassDef) LocationNames() []string {
	names := []string{"keyword_loc", "name_loc", "colon_loc"}
	if !c.BeginLocVal.IsZero() {
		names = append(names, "begin_loc", "end_loc")
	}
	return names
}
