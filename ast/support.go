package ast

import "github.com/akashmaji946/pyparse/source"

// Arguments is a function/lambda parameter list: positional names with
// optional defaults, an optional *args name, an optional **kwargs name.
// Supplemented — the grammar names `def`/`lambda` in prose without
// specifying the parameter-list shape in detail; this mirrors Call's
// args/keywords/starargs/kwargs split on the definition side.
type Arguments struct {
	Args        []*Name
	Defaults    []Expr // parallel to the trailing len(Defaults) entries of Args
	Vararg      *Name  // nil if absent
	Kwarg       *Name  // nil if absent
	StarLocVal  source.Range
	DStarLocVal source.Range
	Rng         source.Range
}

func (a *Arguments) Loc() source.Range { return a.Rng }

func (a *Arguments) StarLoc() source.Range  { return a.StarLocVal }
func (a *Arguments) DStarLoc() source.Range { return a.DStarLocVal }
func (a *Arguments) LocationNames() []string {
	var names []string
	if a.Vararg != nil {
		names = append(names, "star_loc")
	}
	if a.Kwarg != nil {
		names = append(names, "dstar_loc")
	}
	return names
}

// Alias is one `name [as asname]` clause of an import statement.
type Alias struct {
	Name       string
	AsName     string // "" if no `as` clause
	NameLocVal source.Range
	AsLocVal   source.Range // zero if no `as` clause
	Rng        source.Range
}

func (a *Alias) Loc() source.Range     { return a.Rng }
func (a *Alias) NameLoc() source.Range { return a.NameLocVal }
func (a *Alias) AsLoc() source.Range   { return a.AsLocVal }
func (a *Alias) LocationNames() []string {
	names := []string{"name_loc"}
	if a.AsName != "" {
		names = append(names, "as_loc")
	}
	return names
}

// WithItem is one `context_expr [as optional_vars]` clause of a with
// statement (multiple clauses per statement gated by
// version.Selector.MultiContextWith).
type WithItem struct {
	ContextExpr  Expr
	OptionalVars Expr // nil if no `as` clause
	AsLocVal     source.Range
	Rng          source.Range
}

func (w *WithItem) Loc() source.Range { return w.Rng }
func (w *WithItem) AsLoc() source.Range { return w.AsLocVal }
func (w *WithItem) LocationNames() []string {
	if w.OptionalVars != nil {
		return []string{"as_loc"}
	}
	return nil
}

// ExceptHandler is one `except [type [as|, name]]:` clause of a try
// statement.
type ExceptHandler struct {
	Type          Expr // nil for a bare `except:`
	Name          Expr // nil if no name bound
	Body          []Stmt
	KeywordLocVal source.Range
	ColonLocVal   source.Range
	Rng           source.Range
}

func (e *ExceptHandler) Loc() source.Range        { return e.Rng }
func (e *ExceptHandler) KeywordLoc() source.Range { return e.KeywordLocVal }
func (e *ExceptHandler) ColonLoc() source.Range   { return e.ColonLocVal }
func (e *ExceptHandler) LocationNames() []string {
	return []string{"keyword_loc", "colon_loc"}
}
