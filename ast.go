package rbsparse

// Node is implemented by every AST variant. Nodes are immutable once
// built and live entirely in the parser's arena-backed constant pool
// plus ordinary Go heap allocations for the node structs themselves
// (the arena backs interned byte strings, not the nodes — see
// allocator.go).
type Node interface {
	Loc() *Location
	Accept(Visitor) error
	String() string
}

// TypeNode is any AST variant that can appear wherever a `type`
// production is expected.
type TypeNode interface {
	Node
	isType()
}

// base carries the Location every node needs and is embedded rather
// than duplicated.
type base struct{ loc *Location }

func (b *base) Loc() *Location { return b.loc }

// --- Types ---------------------------------------------------------

// BaseKind distinguishes the ten parameterless base types.
type BaseKind int

const (
	BaseBool BaseKind = iota
	BaseVoid
	BaseNil
	BaseSelf
	BaseClass
	BaseInstance
	BaseTop
	BaseBot
	BaseUntyped
	BaseTodo
)

var baseKindNames = map[BaseKind]string{
	BaseBool: "bool", BaseVoid: "void", BaseNil: "nil", BaseSelf: "self",
	BaseClass: "class", BaseInstance: "instance", BaseTop: "top", BaseBot: "bot",
	BaseUntyped: "untyped", BaseTodo: "todo",
}

type BaseType struct {
	base
	Kind BaseKind
}

func NewBaseType(kind BaseKind, loc *Location) *BaseType {
	return &BaseType{base{loc}, kind}
}
func (n *BaseType) isType()            {}
func (n *BaseType) String() string     { return baseKindNames[n.Kind] }
func (n *BaseType) Accept(v Visitor) error { return v.VisitBaseType(n) }

// LiteralKind distinguishes the literal-type payload shape.
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralString
	LiteralSymbol
	LiteralTrue
	LiteralFalse
)

type LiteralType struct {
	base
	Kind LiteralKind
	Text string // raw, unescaped already for string/symbol
}

func NewLiteralType(kind LiteralKind, text string, loc *Location) *LiteralType {
	return &LiteralType{base{loc}, kind, text}
}
func (n *LiteralType) isType()        {}
func (n *LiteralType) String() string { return n.Text }
func (n *LiteralType) Accept(v Visitor) error { return v.VisitLiteralType(n) }

// VariableType is a reference to an in-scope type variable.
type VariableType struct {
	base
	Name ConstantID
}

func NewVariableType(name ConstantID, loc *Location) *VariableType {
	return &VariableType{base{loc}, name}
}
func (n *VariableType) isType()        {}
func (n *VariableType) String() string { return "<typevar>" }
func (n *VariableType) Accept(v Visitor) error { return v.VisitVariableType(n) }

// ClassInstanceType is `Name[Args]`, optionally produced by
// `singleton(Name)` instead (Singleton flag).
type ClassInstanceType struct {
	base
	Name      *TypeName
	Args      []TypeNode
	Singleton bool
}

func NewClassInstanceType(name *TypeName, args []TypeNode, singleton bool, loc *Location) *ClassInstanceType {
	return &ClassInstanceType{base{loc}, name, args, singleton}
}
func (n *ClassInstanceType) isType()        {}
func (n *ClassInstanceType) String() string { return n.Name.String() }
func (n *ClassInstanceType) Accept(v Visitor) error { return v.VisitClassInstanceType(n) }

// InterfaceType is structurally identical to ClassInstanceType but
// its TypeName resolved to interface-casing (`_Foo`).
type InterfaceType struct {
	base
	Name *TypeName
	Args []TypeNode
}

func NewInterfaceType(name *TypeName, args []TypeNode, loc *Location) *InterfaceType {
	return &InterfaceType{base{loc}, name, args}
}
func (n *InterfaceType) isType()        {}
func (n *InterfaceType) String() string { return n.Name.String() }
func (n *InterfaceType) Accept(v Visitor) error { return v.VisitInterfaceType(n) }

// AliasType is a reference to a `type` alias declaration.
type AliasType struct {
	base
	Name *TypeName
	Args []TypeNode
}

func NewAliasType(name *TypeName, args []TypeNode, loc *Location) *AliasType {
	return &AliasType{base{loc}, name, args}
}
func (n *AliasType) isType()        {}
func (n *AliasType) String() string { return n.Name.String() }
func (n *AliasType) Accept(v Visitor) error { return v.VisitAliasType(n) }

type TupleType struct {
	base
	Elements []TypeNode
}

func NewTupleType(elements []TypeNode, loc *Location) *TupleType {
	return &TupleType{base{loc}, elements}
}
func (n *TupleType) isType()        {}
func (n *TupleType) String() string { return "<tuple>" }
func (n *TupleType) Accept(v Visitor) error { return v.VisitTupleType(n) }

type RecordField struct {
	base
	Key      Node // SymbolNode or literal node
	Optional bool
	Value    TypeNode
}

func NewRecordField(key Node, optional bool, value TypeNode, loc *Location) *RecordField {
	return &RecordField{base{loc}, key, optional, value}
}
func (n *RecordField) String() string { return "<field>" }
func (n *RecordField) Accept(v Visitor) error { return v.VisitRecordField(n) }

type RecordType struct {
	base
	Fields []*RecordField
}

func NewRecordType(fields []*RecordField, loc *Location) *RecordType {
	return &RecordType{base{loc}, fields}
}
func (n *RecordType) isType()        {}
func (n *RecordType) String() string { return "<record>" }
func (n *RecordType) Accept(v Visitor) error { return v.VisitRecordType(n) }

type UnionType struct {
	base
	Members []TypeNode
}

func NewUnionType(members []TypeNode, loc *Location) *UnionType {
	return &UnionType{base{loc}, members}
}
func (n *UnionType) isType()        {}
func (n *UnionType) String() string { return "<union>" }
func (n *UnionType) Accept(v Visitor) error { return v.VisitUnionType(n) }

type IntersectionType struct {
	base
	Members []TypeNode
}

func NewIntersectionType(members []TypeNode, loc *Location) *IntersectionType {
	return &IntersectionType{base{loc}, members}
}
func (n *IntersectionType) isType()        {}
func (n *IntersectionType) String() string { return "<intersection>" }
func (n *IntersectionType) Accept(v Visitor) error { return v.VisitIntersectionType(n) }

type OptionalType struct {
	base
	Inner TypeNode
}

func NewOptionalType(inner TypeNode, loc *Location) *OptionalType {
	return &OptionalType{base{loc}, inner}
}
func (n *OptionalType) isType()        {}
func (n *OptionalType) String() string { return n.Inner.String() + "?" }
func (n *OptionalType) Accept(v Visitor) error { return v.VisitOptionalType(n) }

// SelfBinding is the `[self: Type]` clause allowed on procs, blocks,
// and singleton-kind method bodies.
type SelfBinding struct {
	base
	Self TypeNode
}

func NewSelfBinding(self TypeNode, loc *Location) *SelfBinding {
	return &SelfBinding{base{loc}, self}
}
func (n *SelfBinding) String() string { return "<self-binding>" }
func (n *SelfBinding) Accept(v Visitor) error { return v.VisitSelfBinding(n) }

// ProcType is `^function`; fn.Self carries an optional self-binding.
type ProcType struct {
	base
	Fn *FunctionType
}

func NewProcType(fn *FunctionType, loc *Location) *ProcType {
	return &ProcType{base{loc}, fn}
}
func (n *ProcType) isType()        {}
func (n *ProcType) String() string { return "<proc>" }
func (n *ProcType) Accept(v Visitor) error { return v.VisitProcType(n) }

// FunctionParam is one positional/keyword parameter: a type, an
// optional name, and (for keyword params) the keyword symbol.
type FunctionParam struct {
	base
	Type TypeNode
	Name ConstantID // ConstantIDUnset if anonymous
}

func NewFunctionParam(typ TypeNode, name ConstantID, loc *Location) *FunctionParam {
	return &FunctionParam{base{loc}, typ, name}
}
func (n *FunctionParam) String() string { return "<param>" }
func (n *FunctionParam) Accept(v Visitor) error { return v.VisitFunctionParam(n) }

// Block is `{ function }` (required) or `? { function }` (optional),
// carrying its own self-binding scope.
type Block struct {
	base
	Fn       *FunctionType
	Optional bool
}

func NewBlock(fn *FunctionType, optional bool, loc *Location) *Block {
	return &Block{base{loc}, fn, optional}
}
func (n *Block) String() string { return "<block>" }
func (n *Block) Accept(v Visitor) error { return v.VisitBlock(n) }

// FunctionType is the fully resolved phase-ordered parameter list
// plus return type. Required/optional/rest/trailing are positional;
// the three keyword slices hold keyword-named parameters.
type FunctionType struct {
	base
	Self     *SelfBinding // nil if absent
	Untyped  bool         // `(?)` parameter list: Required..RestKw are unused
	Required []*FunctionParam
	Optional   []*FunctionParam
	Rest       *FunctionParam // nil if absent
	Trailing   []*FunctionParam
	RequiredKw []*FunctionParam
	OptionalKw []*FunctionParam
	RestKw     *FunctionParam // nil if absent
	Block      *Block         // nil if absent
	Return     TypeNode
}

func NewFunctionType(loc *Location) *FunctionType {
	return &FunctionType{base: base{loc}}
}
func (n *FunctionType) isType()        {}
func (n *FunctionType) String() string { return "<function>" }
func (n *FunctionType) Accept(v Visitor) error { return v.VisitFunctionType(n) }

// UntypedFunctionType is the `(?) -> T` shorthand: no positional
// parameter types were given at all. The parser does not build this
// node; it records a `(?)` parameter list as a FunctionType with
// Untyped set.
type UntypedFunctionType struct {
	base
	Return TypeNode
}

func NewUntypedFunctionType(ret TypeNode, loc *Location) *UntypedFunctionType {
	return &UntypedFunctionType{base{loc}, ret}
}
func (n *UntypedFunctionType) isType()        {}
func (n *UntypedFunctionType) String() string { return "<untyped-function>" }
func (n *UntypedFunctionType) Accept(v Visitor) error { return v.VisitUntypedFunctionType(n) }

// --- Misc shared nodes ----------------------------------------------

// Namespace is a (possibly empty, possibly absolute) `::`-joined path
// of upper-case segments preceding a final identifier.
type Namespace struct {
	base
	Path     []ConstantID
	Absolute bool
}

func NewNamespace(path []ConstantID, absolute bool, loc *Location) *Namespace {
	return &Namespace{base{loc}, path, absolute}
}
func (n *Namespace) String() string { return "<namespace>" }
func (n *Namespace) Accept(v Visitor) error { return v.VisitNamespace(n) }

// TypeName is a namespace plus a final name symbol.
type TypeName struct {
	base
	Namespace *Namespace
	Name      ConstantID
}

func NewTypeName(ns *Namespace, name ConstantID, loc *Location) *TypeName {
	return &TypeName{base{loc}, ns, name}
}
func (n *TypeName) String() string { return "<type-name>" }
func (n *TypeName) Accept(v Visitor) error { return v.VisitTypeName(n) }

// Variance is a type parameter's declared variance.
type Variance int

const (
	VarianceInvariant Variance = iota
	VarianceCovariant
	VarianceContravariant
)

// TypeParam is one entry of a `[T, U < V, W = X]`-style type
// parameter list.
type TypeParam struct {
	base
	Name      ConstantID
	Variance  Variance
	Unchecked bool
	UpperBound TypeNode // nil if absent
	Default    TypeNode // nil if absent
}

func NewTypeParam(name ConstantID, variance Variance, unchecked bool, upper, def TypeNode, loc *Location) *TypeParam {
	return &TypeParam{base{loc}, name, variance, unchecked, upper, def}
}
func (n *TypeParam) String() string { return "<type-param>" }
func (n *TypeParam) Accept(v Visitor) error { return v.VisitTypeParam(n) }

// Annotation is a `%a{...}`-shaped tag attached to a decl or member.
type Annotation struct {
	base
	Text string // delimiter-stripped contents
}

func NewAnnotation(text string, loc *Location) *Annotation {
	return &Annotation{base{loc}, text}
}
func (n *Annotation) String() string { return n.Text }
func (n *Annotation) Accept(v Visitor) error { return v.VisitAnnotation(n) }

// CommentNode wraps a merged Comment for attachment to a decl/member.
type CommentNode struct {
	base
	Comment *Comment
}

func NewCommentNode(c *Comment, loc *Location) *CommentNode {
	return &CommentNode{base{loc}, c}
}
func (n *CommentNode) String() string { return "<comment>" }
func (n *CommentNode) Accept(v Visitor) error { return v.VisitCommentNode(n) }

// SymbolNode is a `:name`/`:"..."` literal used as a record key or
// keyword-argument tag.
type SymbolNode struct {
	base
	Name ConstantID
}

func NewSymbolNode(name ConstantID, loc *Location) *SymbolNode {
	return &SymbolNode{base{loc}, name}
}
func (n *SymbolNode) String() string { return "<symbol>" }
func (n *SymbolNode) Accept(v Visitor) error { return v.VisitSymbolNode(n) }

// --- Method types & overloads ----------------------------------------

// MethodType is an optional type-param list plus a function (and,
// via Fn.Block, an optional block).
type MethodType struct {
	base
	TypeParams []*TypeParam
	Fn         *FunctionType
}

func NewMethodType(params []*TypeParam, fn *FunctionType, loc *Location) *MethodType {
	return &MethodType{base{loc}, params, fn}
}
func (n *MethodType) String() string { return "<method-type>" }
func (n *MethodType) Accept(v Visitor) error { return v.VisitMethodType(n) }

// --- Members ----------------------------------------------------------

// MemberNode is any node valid as a body item of a class, module, or
// interface.
type MemberNode interface {
	Node
	isMember()
}

type MethodKind int

const (
	MethodInstance MethodKind = iota
	MethodSingleton
	MethodSingletonInstance // `self.` and instance both, via `def self?.foo`
)

// MethodDefinition is `def [self.] name: overload (| overload)* ...?`.
type MethodDefinition struct {
	base
	Name        ConstantID
	Kind        MethodKind
	Overloads   []*MethodType
	Overloading bool // trailing `...`
	Annotations []*Annotation
	Comment     *CommentNode
}

func NewMethodDefinition(name ConstantID, kind MethodKind, overloads []*MethodType, overloading bool, loc *Location) *MethodDefinition {
	return &MethodDefinition{base: base{loc}, Name: name, Kind: kind, Overloads: overloads, Overloading: overloading}
}
func (n *MethodDefinition) isMember()      {}
func (n *MethodDefinition) String() string { return "<method-def>" }
func (n *MethodDefinition) Accept(v Visitor) error { return v.VisitMethodDefinition(n) }

type MixinKind int

const (
	MixinInclude MixinKind = iota
	MixinExtend
	MixinPrepend
)

// MixinMember is `include|extend|prepend Name[Args]`.
type MixinMember struct {
	base
	Kind MixinKind
	Name *TypeName
	Args []TypeNode
}

func NewMixinMember(kind MixinKind, name *TypeName, args []TypeNode, loc *Location) *MixinMember {
	return &MixinMember{base{loc}, kind, name, args}
}
func (n *MixinMember) isMember()      {}
func (n *MixinMember) String() string { return "<mixin>" }
func (n *MixinMember) Accept(v Visitor) error { return v.VisitMixinMember(n) }

// AliasMember is `alias new old` (instance) or `alias self.new self.old`.
type AliasMember struct {
	base
	NewName ConstantID
	OldName ConstantID
	Kind    MethodKind
}

func NewAliasMember(newName, oldName ConstantID, kind MethodKind, loc *Location) *AliasMember {
	return &AliasMember{base{loc}, newName, oldName, kind}
}
func (n *AliasMember) isMember()      {}
func (n *AliasMember) String() string { return "<alias-member>" }
func (n *AliasMember) Accept(v Visitor) error { return v.VisitAliasMember(n) }

type VarKind int

const (
	VarInstance VarKind = iota
	VarClass
	VarClassInstance
)

// VarMember is `@ivar: T`, `@@cvar: T`, or `self.@civar: T`.
type VarMember struct {
	base
	Kind VarKind
	Name ConstantID
	Type TypeNode
}

func NewVarMember(kind VarKind, name ConstantID, typ TypeNode, loc *Location) *VarMember {
	return &VarMember{base{loc}, kind, name, typ}
}
func (n *VarMember) isMember()      {}
func (n *VarMember) String() string { return "<var-member>" }
func (n *VarMember) Accept(v Visitor) error { return v.VisitVarMember(n) }

type AttrKind int

const (
	AttrReader AttrKind = iota
	AttrWriter
	AttrAccessor
)

// AttrMember is `attr_reader|attr_writer|attr_accessor name: T`.
type AttrMember struct {
	base
	Kind     AttrKind
	Name     ConstantID
	IvarName ConstantID // ConstantIDUnset if no explicit ivar given
	Type     TypeNode
	Kind2    MethodKind // instance vs singleton
}

func NewAttrMember(kind AttrKind, name, ivarName ConstantID, typ TypeNode, loc *Location) *AttrMember {
	return &AttrMember{base: base{loc}, Kind: kind, Name: name, IvarName: ivarName, Type: typ}
}
func (n *AttrMember) isMember()      {}
func (n *AttrMember) String() string { return "<attr-member>" }
func (n *AttrMember) Accept(v Visitor) error { return v.VisitAttrMember(n) }

// VisibilityKind distinguishes `public`/`private` member markers.
type VisibilityKind int

const (
	VisibilityPublic VisibilityKind = iota
	VisibilityPrivate
)

type VisibilityMember struct {
	base
	Kind VisibilityKind
}

func NewVisibilityMember(kind VisibilityKind, loc *Location) *VisibilityMember {
	return &VisibilityMember{base{loc}, kind}
}
func (n *VisibilityMember) isMember()      {}
func (n *VisibilityMember) String() string { return "<visibility-member>" }
func (n *VisibilityMember) Accept(v Visitor) error { return v.VisitVisibilityMember(n) }

// --- Declarations -----------------------------------------------------

// DeclNode is any node valid as a top-level signature declaration.
type DeclNode interface {
	Node
	isDecl()
}

type ConstDecl struct {
	base
	Name *TypeName
	Type TypeNode
}

func NewConstDecl(name *TypeName, typ TypeNode, loc *Location) *ConstDecl {
	return &ConstDecl{base{loc}, name, typ}
}
func (n *ConstDecl) isDecl()        {}
func (n *ConstDecl) String() string { return "<const-decl>" }
func (n *ConstDecl) Accept(v Visitor) error { return v.VisitConstDecl(n) }

type GlobalDecl struct {
	base
	Name ConstantID
	Type TypeNode
}

func NewGlobalDecl(name ConstantID, typ TypeNode, loc *Location) *GlobalDecl {
	return &GlobalDecl{base{loc}, name, typ}
}
func (n *GlobalDecl) isDecl()        {}
func (n *GlobalDecl) String() string { return "<global-decl>" }
func (n *GlobalDecl) Accept(v Visitor) error { return v.VisitGlobalDecl(n) }

type TypeAliasDecl struct {
	base
	Name       *TypeName
	TypeParams []*TypeParam
	Type       TypeNode
	Annotations []*Annotation
	Comment    *CommentNode
}

func NewTypeAliasDecl(name *TypeName, params []*TypeParam, typ TypeNode, loc *Location) *TypeAliasDecl {
	return &TypeAliasDecl{base: base{loc}, Name: name, TypeParams: params, Type: typ}
}
func (n *TypeAliasDecl) isDecl()        {}
func (n *TypeAliasDecl) String() string { return "<type-alias-decl>" }
func (n *TypeAliasDecl) Accept(v Visitor) error { return v.VisitTypeAliasDecl(n) }

type InterfaceDecl struct {
	base
	Name       *TypeName
	TypeParams []*TypeParam
	Members    []MemberNode
	Annotations []*Annotation
	Comment    *CommentNode
}

func NewInterfaceDecl(name *TypeName, params []*TypeParam, members []MemberNode, loc *Location) *InterfaceDecl {
	return &InterfaceDecl{base: base{loc}, Name: name, TypeParams: params, Members: members}
}
func (n *InterfaceDecl) isDecl()        {}
func (n *InterfaceDecl) String() string { return "<interface-decl>" }
func (n *InterfaceDecl) Accept(v Visitor) error { return v.VisitInterfaceDecl(n) }

type ModuleSelfType struct {
	base
	Name *TypeName
	Args []TypeNode
}

func NewModuleSelfType(name *TypeName, args []TypeNode, loc *Location) *ModuleSelfType {
	return &ModuleSelfType{base{loc}, name, args}
}
func (n *ModuleSelfType) String() string { return "<self-type>" }
func (n *ModuleSelfType) Accept(v Visitor) error { return v.VisitModuleSelfType(n) }

type ModuleDecl struct {
	base
	Name       *TypeName
	TypeParams []*TypeParam
	SelfTypes  []*ModuleSelfType
	Members    []MemberNode
	Annotations []*Annotation
	Comment    *CommentNode
}

func NewModuleDecl(name *TypeName, params []*TypeParam, self []*ModuleSelfType, members []MemberNode, loc *Location) *ModuleDecl {
	return &ModuleDecl{base: base{loc}, Name: name, TypeParams: params, SelfTypes: self, Members: members}
}
func (n *ModuleDecl) isDecl()        {}
func (n *ModuleDecl) String() string { return "<module-decl>" }
func (n *ModuleDecl) Accept(v Visitor) error { return v.VisitModuleDecl(n) }

type ModuleAliasDecl struct {
	base
	NewName *TypeName
	OldName *TypeName
}

func NewModuleAliasDecl(newName, oldName *TypeName, loc *Location) *ModuleAliasDecl {
	return &ModuleAliasDecl{base{loc}, newName, oldName}
}
func (n *ModuleAliasDecl) isDecl()        {}
func (n *ModuleAliasDecl) String() string { return "<module-alias-decl>" }
func (n *ModuleAliasDecl) Accept(v Visitor) error { return v.VisitModuleAliasDecl(n) }

// ClassSuper is the `< Name[Args]` superclass clause.
type ClassSuper struct {
	base
	Name *TypeName
	Args []TypeNode
}

func NewClassSuper(name *TypeName, args []TypeNode, loc *Location) *ClassSuper {
	return &ClassSuper{base{loc}, name, args}
}
func (n *ClassSuper) String() string { return "<class-super>" }
func (n *ClassSuper) Accept(v Visitor) error { return v.VisitClassSuper(n) }

type ClassDecl struct {
	base
	Name       *TypeName
	TypeParams []*TypeParam
	Super      *ClassSuper // nil if absent
	Members    []MemberNode
	Annotations []*Annotation
	Comment    *CommentNode
}

func NewClassDecl(name *TypeName, params []*TypeParam, super *ClassSuper, members []MemberNode, loc *Location) *ClassDecl {
	return &ClassDecl{base: base{loc}, Name: name, TypeParams: params, Super: super, Members: members}
}
func (n *ClassDecl) isDecl()        {}
func (n *ClassDecl) String() string { return "<class-decl>" }
func (n *ClassDecl) Accept(v Visitor) error { return v.VisitClassDecl(n) }

type ClassAliasDecl struct {
	base
	NewName *TypeName
	OldName *TypeName
}

func NewClassAliasDecl(newName, oldName *TypeName, loc *Location) *ClassAliasDecl {
	return &ClassAliasDecl{base{loc}, newName, oldName}
}
func (n *ClassAliasDecl) isDecl()        {}
func (n *ClassAliasDecl) String() string { return "<class-alias-decl>" }
func (n *ClassAliasDecl) Accept(v Visitor) error { return v.VisitClassAliasDecl(n) }

// --- Use directives -----------------------------------------------------

// UseClause is one entry of a `use` directive: either a single
// (possibly renamed) name, or a namespace wildcard (`Foo::*`).
type UseClause struct {
	base
	Namespace *Namespace
	Name      ConstantID // ConstantIDUnset for a wildcard clause
	Wildcard  bool
	As        ConstantID // ConstantIDUnset if not renamed
}

func NewUseClause(ns *Namespace, name ConstantID, wildcard bool, as ConstantID, loc *Location) *UseClause {
	return &UseClause{base{loc}, ns, name, wildcard, as}
}
func (n *UseClause) String() string { return "<use-clause>" }
func (n *UseClause) Accept(v Visitor) error { return v.VisitUseClause(n) }

type UseDirective struct {
	base
	Clauses []*UseClause
}

func NewUseDirective(clauses []*UseClause, loc *Location) *UseDirective {
	return &UseDirective{base{loc}, clauses}
}
func (n *UseDirective) isDecl()        {}
func (n *UseDirective) String() string { return "<use-directive>" }
func (n *UseDirective) Accept(v Visitor) error { return v.VisitUseDirective(n) }

// Signature is the parse_signature result: the directives and
// declarations found at the top level of one source buffer.
type Signature struct {
	base
	Uses  []*UseDirective
	Decls []DeclNode
}

func NewSignature(uses []*UseDirective, decls []DeclNode, loc *Location) *Signature {
	return &Signature{base{loc}, uses, decls}
}
func (n *Signature) String() string { return "<signature>" }
func (n *Signature) Accept(v Visitor) error { return v.VisitSignature(n) }
