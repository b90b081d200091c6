package types

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/you-not-fish/teya/internal/ast"
	"github.com/you-not-fish/teya/internal/syntax"
)

// Collect declares the items of a parsed source file in a new package
// and resolves the type expressions they contain. Function bodies and
// initializers are not examined.
//
// Items whose names are missing from malformed input are skipped; the
// parser has already reported them. A tree parsed from a rule other than
// the source file rule yields an empty package.
func Collect(tree *syntax.Tree) (*Package, []*Error) {
	c := &collector{
		tree:    tree,
		pkg:     NewPackage(packageName(tree.Filename)),
		aliases: make(map[*TypeName]*decl),
	}
	file, ok := ast.Cast[*ast.SourceFile](tree.Root)
	if !ok {
		return c.pkg, nil
	}

	// Phase 1: declare every item so that types may refer forward.
	var decls []*decl
	for _, item := range file.Items() {
		if d := c.declareItem(item); d != nil {
			decls = append(decls, d)
		}
	}

	// Phase 2: resolve signatures, fields, variants and aliases.
	for _, d := range decls {
		c.resolveItem(d)
	}

	sort.SliceStable(c.errs, func(i, j int) bool {
		return c.errs[i].Offset < c.errs[j].Offset
	})
	return c.pkg, c.errs
}

type collector struct {
	tree    *syntax.Tree
	pkg     *Package
	errs    []*Error
	aliases map[*TypeName]*decl
}

// decl is an item being collected.
type decl struct {
	item    ast.Item
	obj     Object
	scope   *Scope // scope for the item's types
	tparams []*TypeParam
	state   aliasState
}

type aliasState uint8

const (
	unresolved aliasState = iota
	resolving
	resolved
)

func packageName(filename string) string {
	if filename == "" {
		return "main"
	}
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// errorf reports an error at the start of n.
func (c *collector) errorf(n ast.Node, format string, args ...any) {
	off := start(n.Syntax())
	c.errs = append(c.errs, &Error{
		Pos:    c.tree.Pos(off),
		Offset: off,
		Msg:    fmt.Sprintf(format, args...),
	})
}

// start returns the offset of the first significant token of n.
func start(n *syntax.Node) int {
	if toks := n.Significant(); len(toks) > 0 {
		return toks[0].Start
	}
	return n.Start()
}

func (c *collector) pos(n ast.Node) syntax.Pos {
	return c.tree.Pos(start(n.Syntax()))
}

// declare inserts obj into s. It reports an error and returns false if
// the name is taken.
func (c *collector) declare(s *Scope, name *ast.Name, obj Object) bool {
	if existing := s.Insert(obj); existing != nil {
		c.errorf(name, "%s redeclared in this block", name.Value())
		return false
	}
	return true
}

// ----------------------------------------------------------------------------
// Declaration

func itemName(item ast.Item) (*ast.Name, *ast.GenericParamList, string) {
	switch it := item.(type) {
	case *ast.FnDecl:
		return it.Name(), it.GenericParams(), "fn"
	case *ast.StructDecl:
		return it.Name(), it.GenericParams(), "struct"
	case *ast.EnumDecl:
		return it.Name(), it.GenericParams(), "enum"
	case *ast.TypeAliasDecl:
		return it.Name(), it.GenericParams(), "type"
	case *ast.ConstDecl:
		return it.Name(), nil, "const"
	}
	return nil, nil, ""
}

// declareItem creates the object for item and declares it in the
// package scope. A redeclared item is still returned so that its types
// are checked.
func (c *collector) declareItem(item ast.Item) *decl {
	name, gparams, keyword := itemName(item)
	if name == nil || name.Value() == "" {
		return nil
	}
	pos, value := c.pos(name), name.Value()

	var obj Object
	var named *Named
	switch item.(type) {
	case *ast.FnDecl:
		obj = NewFunc(pos, value)
	case *ast.StructDecl, *ast.EnumDecl:
		tn := NewTypeName(pos, value, nil)
		named = NewNamed(tn, nil)
		obj = tn
	case *ast.TypeAliasDecl:
		obj = NewAlias(pos, value)
	case *ast.ConstDecl:
		obj = NewConst(pos, value, nil)
	}

	d := &decl{item: item, obj: obj, scope: c.pkg.scope}
	if c.declare(c.pkg.scope, name, obj) {
		if tn, ok := obj.(*TypeName); ok && tn.IsAlias() {
			c.aliases[tn] = d
		}
	}
	if gparams != nil {
		d.scope = c.openScope(c.pkg.scope, item, keyword+" "+value)
		d.tparams = c.declareTypeParams(d.scope, gparams)
		if named != nil {
			named.SetTypeParams(d.tparams)
		}
	}
	return d
}

func (c *collector) openScope(parent *Scope, n ast.Node, comment string) *Scope {
	syn := n.Syntax()
	return NewScope(parent, c.tree.Pos(start(syn)), c.tree.Pos(syn.End()), comment)
}

func (c *collector) declareTypeParams(s *Scope, list *ast.GenericParamList) []*TypeParam {
	var tparams []*TypeParam
	for _, p := range list.Params() {
		name := p.Name()
		if name == nil {
			continue
		}
		tn := NewTypeName(c.pos(name), name.Value(), nil)
		tp := NewTypeParam(tn, len(tparams))
		if c.declare(s, name, tn) {
			tparams = append(tparams, tp)
		}
	}
	return tparams
}

// ----------------------------------------------------------------------------
// Resolution

func (c *collector) resolveItem(d *decl) {
	switch it := d.item.(type) {
	case *ast.FnDecl:
		fn := d.obj.(*Func)
		fn.SetSignature(c.signature(d.scope, d.tparams, nil, it))
	case *ast.StructDecl:
		named := d.obj.Type().(*Named)
		c.structType(d.scope, named, it.Body())
	case *ast.EnumDecl:
		named := d.obj.Type().(*Named)
		named.SetUnderlying(c.enumType(d.scope, it.Body()))
	case *ast.TypeAliasDecl:
		c.resolveAlias(d)
	case *ast.ConstDecl:
		cn := d.obj.(*Const)
		if t := it.Type(); t != nil {
			cn.SetType(c.typeOf(d.scope, t))
		} else {
			cn.SetType(literalType(it.Value()))
		}
	}
}

// resolveAlias sets the type of an alias. Aliases are resolved on first
// use, so one alias may refer to another declared later in the file.
func (c *collector) resolveAlias(d *decl) {
	tn := d.obj.(*TypeName)
	switch d.state {
	case resolved:
		return
	case resolving:
		c.errorf(d.item.(*ast.TypeAliasDecl).Name(), "invalid recursive type alias %s", tn.Name())
		tn.SetType(Typ[Invalid])
		return
	}
	d.state = resolving
	t := c.typeOf(d.scope, d.item.(*ast.TypeAliasDecl).Type())
	if tn.Type() == nil {
		tn.SetType(t)
	}
	d.state = resolved
}

// signature resolves the parameter and result types of fn. Generic
// parameters are already declared in s.
func (c *collector) signature(s *Scope, tparams []*TypeParam, recv *Var, fn *ast.FnDecl) *Signature {
	var params []*Var
	if list := fn.Params(); list != nil {
		seen := make(map[string]bool)
		for _, p := range list.Params() {
			var name string
			if n := p.Name(); n != nil {
				name = n.Value()
				if seen[name] {
					c.errorf(n, "duplicate parameter %s", name)
				}
				seen[name] = true
			}
			params = append(params, NewVar(c.pos(p), name, c.typeOf(s, p.Type())))
		}
	}
	var result Type
	if rt := fn.ReturnType(); rt != nil {
		result = c.typeOf(s, rt.Type())
	}
	return NewSignature(tparams, recv, params, result)
}

// structType resolves the fields of a struct and declares its methods.
func (c *collector) structType(s *Scope, named *Named, body *ast.StructBody) {
	var fields []*Var
	named.SetUnderlying(NewStruct(nil))
	if body == nil {
		return
	}

	seen := make(map[string]bool)
	for _, f := range body.Fields() {
		name := f.Name()
		if name == nil {
			continue
		}
		if seen[name.Value()] {
			c.errorf(name, "duplicate field %s", name.Value())
			continue
		}
		seen[name.Value()] = true
		fields = append(fields, NewField(c.pos(name), name.Value(), c.typeOf(s, f.Type())))
	}
	named.SetUnderlying(NewStruct(fields))

	for _, m := range body.Methods() {
		name := m.Name()
		if name == nil || name.Value() == "" {
			continue
		}
		ms := s
		var tparams []*TypeParam
		if gparams := m.GenericParams(); gparams != nil {
			ms = c.openScope(s, m, "fn "+named.obj.Name()+"."+name.Value())
			tparams = c.declareTypeParams(ms, gparams)
		}
		fn := NewFunc(c.pos(name), name.Value())
		fn.SetSignature(c.signature(ms, tparams, NewVar(NoPos, "", named), m))

		switch {
		case seen[name.Value()]:
			c.errorf(name, "field and method with the same name %s", name.Value())
		case named.LookupMethod(name.Value()) != nil:
			c.errorf(name, "method %s.%s already declared", named.obj.Name(), name.Value())
		default:
			named.AddMethod(fn)
		}
	}
}

func (c *collector) enumType(s *Scope, body *ast.EnumBody) *Enum {
	if body == nil {
		return NewEnum(nil)
	}
	var variants []*Variant
	seen := make(map[string]bool)
	for _, v := range body.Variants() {
		name := v.Name()
		if name == nil {
			continue
		}
		if seen[name.Value()] {
			c.errorf(name, "duplicate variant %s", name.Value())
			continue
		}
		seen[name.Value()] = true

		kind := UnitVariant
		var fields []*Var
		switch {
		case v.TupleFields() != nil:
			kind = TupleVariant
			for _, f := range v.TupleFields().Fields() {
				fields = append(fields, NewField(c.pos(f), "", c.typeOf(s, f.Type())))
			}
		case v.RecordFields() != nil:
			kind = RecordVariant
			names := make(map[string]bool)
			for _, f := range v.RecordFields().Fields() {
				fname := f.Name()
				if fname == nil {
					continue
				}
				if names[fname.Value()] {
					c.errorf(fname, "duplicate field %s", fname.Value())
					continue
				}
				names[fname.Value()] = true
				fields = append(fields, NewField(c.pos(fname), fname.Value(), c.typeOf(s, f.Type())))
			}
		}
		variants = append(variants, NewVariant(name.Value(), kind, fields))
	}
	return NewEnum(variants)
}

// typeOf resolves a type expression in scope s. It returns Typ[Invalid]
// for types that cannot be resolved, reporting an error unless the type
// is missing from malformed input.
func (c *collector) typeOf(s *Scope, t ast.Type) Type {
	switch t := t.(type) {
	case *ast.TypeRef:
		return c.typeRef(s, t)
	case *ast.ArrayType:
		elem := c.typeOf(s, t.Elem())
		n := int64(-1)
		if lit := t.Len(); lit != "" {
			v, err := strconv.ParseInt(lit, 10, 64)
			if err != nil {
				c.errorf(t, "invalid array length %s", lit)
				return Typ[Invalid]
			}
			n = v
		}
		return NewArray(n, elem)
	case *ast.TupleType:
		var elems []Type
		for _, e := range t.Elems() {
			elems = append(elems, c.typeOf(s, e))
		}
		return NewTuple(elems...)
	}
	return Typ[Invalid]
}

func (c *collector) typeRef(s *Scope, ref *ast.TypeRef) Type {
	name := ref.Name()
	obj, _ := s.LookupParent(name)
	if obj == nil {
		c.errorf(ref, "undefined: %s", name)
		return Typ[Invalid]
	}
	tn, ok := obj.(*TypeName)
	if !ok {
		c.errorf(ref, "%s is not a type", name)
		return Typ[Invalid]
	}
	if d := c.aliases[tn]; d != nil {
		c.resolveAlias(d)
	}

	var targs []Type
	if list := ref.GenericArgs(); list != nil {
		for _, a := range list.Args() {
			targs = append(targs, c.typeOf(s, a.Type()))
		}
	}

	var tparams []*TypeParam
	switch t := tn.Type().(type) {
	case *Named:
		tparams = t.TypeParams()
	default:
		if tn.IsAlias() {
			if d := c.aliases[tn]; d != nil {
				tparams = d.tparams
			}
		}
	}

	if len(tparams) == 0 {
		if len(targs) > 0 {
			c.errorf(ref, "%s is not a generic type", name)
			return Typ[Invalid]
		}
		if tn.Type() == nil {
			return Typ[Invalid]
		}
		return tn.Type()
	}
	if len(targs) != len(tparams) {
		c.errorf(ref, "wrong number of type arguments for %s: got %d, want %d", name, len(targs), len(tparams))
		return Typ[Invalid]
	}

	if named, ok := tn.Type().(*Named); ok && !tn.IsAlias() {
		return named.Instantiate(targs)
	}
	return subst(tn.Type(), tparams, targs)
}

// subst replaces the type parameters tparams in t by targs. It only
// needs to handle the types a type expression can produce.
func subst(t Type, tparams []*TypeParam, targs []Type) Type {
	switch t := t.(type) {
	case *TypeParam:
		for i, tp := range tparams {
			if tp == t {
				return targs[i]
			}
		}
	case *Array:
		return NewArray(t.len, subst(t.elem, tparams, targs))
	case *Tuple:
		elems := make([]Type, len(t.elems))
		for i, e := range t.elems {
			elems[i] = subst(e, tparams, targs)
		}
		return NewTuple(elems...)
	case *Named:
		if len(t.targs) > 0 {
			args := make([]Type, len(t.targs))
			for i, a := range t.targs {
				args[i] = subst(a, tparams, targs)
			}
			return t.Instantiate(args)
		}
	}
	return t
}

// literalType returns the type of a constant initializer that is a
// literal, or nil.
func literalType(e ast.Expr) Type {
	switch e := e.(type) {
	case *ast.NumberLit:
		if e.IsFloat() {
			return Typ[Float]
		}
		return Typ[Int]
	case *ast.StringLit:
		return Typ[String]
	case *ast.VarRef:
		if name := e.Name(); name == "true" || name == "false" {
			return Typ[Bool]
		}
	case *ast.UnaryExpr:
		b, ok := literalType(e.Operand()).(*Basic)
		if !ok {
			return nil
		}
		if e.Op().Kind == syntax.Bang {
			if b.kind == Bool {
				return b
			}
		} else if b.info&IsNumeric != 0 {
			return b
		}
	case *ast.ParenExpr:
		return literalType(e.X())
	}
	return nil
}
