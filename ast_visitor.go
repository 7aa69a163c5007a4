package rbsparse

// Visitor dispatches over every closed AST variant. Implementations
// that only care about a handful of node kinds typically embed
// BaseVisitor and override the methods they need.
type Visitor interface {
	VisitBaseType(*BaseType) error
	VisitLiteralType(*LiteralType) error
	VisitVariableType(*VariableType) error
	VisitClassInstanceType(*ClassInstanceType) error
	VisitInterfaceType(*InterfaceType) error
	VisitAliasType(*AliasType) error
	VisitTupleType(*TupleType) error
	VisitRecordField(*RecordField) error
	VisitRecordType(*RecordType) error
	VisitUnionType(*UnionType) error
	VisitIntersectionType(*IntersectionType) error
	VisitOptionalType(*OptionalType) error
	VisitSelfBinding(*SelfBinding) error
	VisitProcType(*ProcType) error
	VisitFunctionParam(*FunctionParam) error
	VisitBlock(*Block) error
	VisitFunctionType(*FunctionType) error
	VisitUntypedFunctionType(*UntypedFunctionType) error
	VisitNamespace(*Namespace) error
	VisitTypeName(*TypeName) error
	VisitTypeParam(*TypeParam) error
	VisitAnnotation(*Annotation) error
	VisitCommentNode(*CommentNode) error
	VisitSymbolNode(*SymbolNode) error
	VisitMethodType(*MethodType) error
	VisitMethodDefinition(*MethodDefinition) error
	VisitMixinMember(*MixinMember) error
	VisitAliasMember(*AliasMember) error
	VisitVarMember(*VarMember) error
	VisitAttrMember(*AttrMember) error
	VisitVisibilityMember(*VisibilityMember) error
	VisitConstDecl(*ConstDecl) error
	VisitGlobalDecl(*GlobalDecl) error
	VisitTypeAliasDecl(*TypeAliasDecl) error
	VisitInterfaceDecl(*InterfaceDecl) error
	VisitModuleSelfType(*ModuleSelfType) error
	VisitModuleDecl(*ModuleDecl) error
	VisitModuleAliasDecl(*ModuleAliasDecl) error
	VisitClassSuper(*ClassSuper) error
	VisitClassDecl(*ClassDecl) error
	VisitClassAliasDecl(*ClassAliasDecl) error
	VisitUseClause(*UseClause) error
	VisitUseDirective(*UseDirective) error
	VisitSignature(*Signature) error
}

// BaseVisitor implements Visitor with no-op methods, so a caller that
// only needs a few hooks can embed it and override selectively.
type BaseVisitor struct{}

func (BaseVisitor) VisitBaseType(*BaseType) error                     { return nil }
func (BaseVisitor) VisitLiteralType(*LiteralType) error               { return nil }
func (BaseVisitor) VisitVariableType(*VariableType) error             { return nil }
func (BaseVisitor) VisitClassInstanceType(*ClassInstanceType) error   { return nil }
func (BaseVisitor) VisitInterfaceType(*InterfaceType) error           { return nil }
func (BaseVisitor) VisitAliasType(*AliasType) error                   { return nil }
func (BaseVisitor) VisitTupleType(*TupleType) error                   { return nil }
func (BaseVisitor) VisitRecordField(*RecordField) error               { return nil }
func (BaseVisitor) VisitRecordType(*RecordType) error                 { return nil }
func (BaseVisitor) VisitUnionType(*UnionType) error                   { return nil }
func (BaseVisitor) VisitIntersectionType(*IntersectionType) error     { return nil }
func (BaseVisitor) VisitOptionalType(*OptionalType) error             { return nil }
func (BaseVisitor) VisitSelfBinding(*SelfBinding) error               { return nil }
func (BaseVisitor) VisitProcType(*ProcType) error                     { return nil }
func (BaseVisitor) VisitFunctionParam(*FunctionParam) error           { return nil }
func (BaseVisitor) VisitBlock(*Block) error                           { return nil }
func (BaseVisitor) VisitFunctionType(*FunctionType) error             { return nil }
func (BaseVisitor) VisitUntypedFunctionType(*UntypedFunctionType) error { return nil }
func (BaseVisitor) VisitNamespace(*Namespace) error                   { return nil }
func (BaseVisitor) VisitTypeName(*TypeName) error                     { return nil }
func (BaseVisitor) VisitTypeParam(*TypeParam) error                   { return nil }
func (BaseVisitor) VisitAnnotation(*Annotation) error                 { return nil }
func (BaseVisitor) VisitCommentNode(*CommentNode) error               { return nil }
func (BaseVisitor) VisitSymbolNode(*SymbolNode) error                 { return nil }
func (BaseVisitor) VisitMethodType(*MethodType) error                 { return nil }
func (BaseVisitor) VisitMethodDefinition(*MethodDefinition) error     { return nil }
func (BaseVisitor) VisitMixinMember(*MixinMember) error               { return nil }
func (BaseVisitor) VisitAliasMember(*AliasMember) error               { return nil }
func (BaseVisitor) VisitVarMember(*VarMember) error                   { return nil }
func (BaseVisitor) VisitAttrMember(*AttrMember) error                 { return nil }
func (BaseVisitor) VisitVisibilityMember(*VisibilityMember) error     { return nil }
func (BaseVisitor) VisitConstDecl(*ConstDecl) error                   { return nil }
func (BaseVisitor) VisitGlobalDecl(*GlobalDecl) error                 { return nil }
func (BaseVisitor) VisitTypeAliasDecl(*TypeAliasDecl) error           { return nil }
func (BaseVisitor) VisitInterfaceDecl(*InterfaceDecl) error           { return nil }
func (BaseVisitor) VisitModuleSelfType(*ModuleSelfType) error         { return nil }
func (BaseVisitor) VisitModuleDecl(*ModuleDecl) error                 { return nil }
func (BaseVisitor) VisitModuleAliasDecl(*ModuleAliasDecl) error       { return nil }
func (BaseVisitor) VisitClassSuper(*ClassSuper) error                 { return nil }
func (BaseVisitor) VisitClassDecl(*ClassDecl) error                   { return nil }
func (BaseVisitor) VisitClassAliasDecl(*ClassAliasDecl) error         { return nil }
func (BaseVisitor) VisitUseClause(*UseClause) error                   { return nil }
func (BaseVisitor) VisitUseDirective(*UseDirective) error             { return nil }
func (BaseVisitor) VisitSignature(*Signature) error                   { return nil }

// WalkSignature visits every declaration and use-directive of sig's
// top level, in source order, without descending further — callers
// that need full traversal implement their own recursive Visitor.
func WalkSignature(v Visitor, sig *Signature) error {
	for _, u := range sig.Uses {
		if err := u.Accept(v); err != nil {
			return err
		}
	}
	for _, d := range sig.Decls {
		if err := d.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
