/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package validator

import (
	"github.com/latticegql/validate/graphql"
	"github.com/latticegql/validate/graphql/ast"
)

// A Rule implements an ast.Visitor to validate nodes in a GraphQL document according to one of the
// sections under "Validation" in specification [0].
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Validation

// NextCheckAction is the type of return value from rule's Check function. It specifies which action
// to take when the rule is invoked next time in current validation request.
type NextCheckAction int

// Enumeration of NextCheckAction
const (
	// Continue running the rule
	ContinueCheck NextCheckAction = iota

	// Don't run the rule on any of child nodes of the current one
	SkipCheckForChildNodes

	// Stop running the rule in current validation request
	StopCheck
)

// OperationRule validates an OperationDefinition.
type OperationRule interface {
	CheckOperation(ctx *ValidationContext, operation *ast.OperationDefinition) NextCheckAction
}

// FragmentRule validates an FragmentDefinition.
type FragmentRule interface {
	CheckFragment(
		ctx *ValidationContext,
		fragmentInfo *FragmentInfo,
		fragment *ast.FragmentDefinition) NextCheckAction
}

// FragmentInfo provides information about a named fragment that is shared by FragmentRule and
// FragmentSpreadRule so that it only needs to be computed once no matter how many times (or from how
// many spread sites) the fragment is referenced.
type FragmentInfo struct {
	definition    *ast.FragmentDefinition
	typeCondition graphql.Type
	used          bool

	// CycleChecked marks whether NoFragmentCycles has already explored this fragment while searching
	// for cycles. It is exported so the rule can read and set it directly as it performs its own
	// depth-first search across ValidationContext.FragmentInfo lookups.
	CycleChecked bool
}

// Definition returns the FragmentDefinition node that the info describes.
func (info *FragmentInfo) Definition() *ast.FragmentDefinition {
	return info.definition
}

// Name returns the fragment's name.
func (info *FragmentInfo) Name() string {
	return info.definition.Name.Value()
}

// TypeCondition returns the type that the fragment's type condition resolves to in the schema.
// Returns nil if the type condition names a type that doesn't exist in the schema.
func (info *FragmentInfo) TypeCondition() graphql.Type {
	return info.typeCondition
}

// Used returns true if the fragment is spread, directly or transitively, from any operation in the
// document.
func (info *FragmentInfo) Used() bool {
	return info.used
}

// RecursivelyMarkUsed marks the fragment as used along with every fragment spread, directly or
// transitively, from its selection set.
func (info *FragmentInfo) RecursivelyMarkUsed(ctx *ValidationContext) {
	if info.used {
		return
	}
	info.used = true

	for _, name := range fragmentSpreadNamesIn(info.definition.SelectionSet) {
		if spread := ctx.FragmentInfo(name); spread != nil {
			spread.RecursivelyMarkUsed(ctx)
		}
	}
}

// SelectionSetRule validates a SelectionSet.
type SelectionSetRule interface {
	CheckSelectionSet(
		ctx *ValidationContext,
		ttype graphql.Type,
		selectionSet ast.SelectionSet) NextCheckAction
}

// FieldInfo provides information of the field to be checked for FieldRule and FieldArgumentRule.
type FieldInfo struct {
	parentType    graphql.Type
	def           graphql.Field
	node          *ast.Field
	knownArgNames []string
}

// ParentType returns type of parent that includes the field; Must be a composite type (Object,
// Union or Interface.)
func (info *FieldInfo) ParentType() graphql.Type {
	return info.parentType
}

// Def returns field definition corresponding to the node in schema (could be nil; For example, in
// the case of unknown fields.)
func (info *FieldInfo) Def() graphql.Field {
	return info.def
}

// Type returns definition of the field type in schema. Could be nil if the field definition is not
// available.
func (info *FieldInfo) Type() graphql.Type {
	if info.def != nil {
		return info.def.Type()
	}
	return nil
}

// Node returns AST node that specifies the field
func (info *FieldInfo) Node() *ast.Field {
	return info.node
}

// Name returns field name.
func (info *FieldInfo) Name() string {
	return info.node.Name.Value()
}

// KnownArgNames returns list of argument names in the field. This is used by KnownArgumentNames
// rule to make suggestion when an unknown argument is given. It is lazily computed on first call to
// KnownArgName.
func (info *FieldInfo) KnownArgNames() []string {
	knownArgNames := info.knownArgNames
	if knownArgNames != nil {
		return knownArgNames
	}

	def := info.def
	if def != nil {
		argDefs := def.Args()
		knownArgNames = make([]string, len(argDefs))
		for i := range argDefs {
			knownArgNames[i] = argDefs[i].Name()
		}
		// Cache in info.knownArgNames for later accesses.
		info.knownArgNames = knownArgNames
	}

	return knownArgNames
}

// FieldRule validates a Field.
type FieldRule interface {
	CheckField(ctx *ValidationContext, field *FieldInfo) NextCheckAction
}

// FieldArgumentRule validates a Argument in a Field.
type FieldArgumentRule interface {
	CheckFieldArgument(
		ctx *ValidationContext,
		field *FieldInfo,
		argDef *graphql.Argument,
		arg *ast.Argument) NextCheckAction
}

// InlineFragmentRule validates a InlineFragment.
type InlineFragmentRule interface {
	CheckInlineFragment(
		ctx *ValidationContext,
		parentType graphql.Type,
		typeCondition graphql.Type,
		fragment *ast.InlineFragment) NextCheckAction
}

// FragmentSpreadRule validates a FragmentSpread.
type FragmentSpreadRule interface {
	CheckFragmentSpread(
		ctx *ValidationContext,
		parentType graphql.Type,
		fragmentInfo *FragmentInfo,
		fragmentSpread *ast.FragmentSpread) NextCheckAction
}

// DirectiveInfo provides information of the field to be checked for DirectiveRule and DirectiveArgumentRule.
type DirectiveInfo struct {
	def           graphql.Directive
	node          *ast.Directive
	location      graphql.DirectiveLocation
	knownArgNames []string
}

// Def returns directive definition corresponding to the node in schema (could be nil; For example,
// in the case of unknown directives.)
func (info *DirectiveInfo) Def() graphql.Directive {
	return info.def
}

// Node returns AST node that specifies the directive
func (info *DirectiveInfo) Node() *ast.Directive {
	return info.node
}

// Name returns directive name.
func (info *DirectiveInfo) Name() string {
	return info.node.Name.Value()
}

// Location indicates the place where the directive node appears in the document.
func (info *DirectiveInfo) Location() graphql.DirectiveLocation {
	return info.location
}

// KnownArgNames returns list of argument names to the directive. This is used by KnownArgumentNames
// rule to make suggestion when an unknown argument is given. It is lazily computed on first call to
// KnownArgName.
func (info *DirectiveInfo) KnownArgNames() []string {
	knownArgNames := info.knownArgNames
	if knownArgNames != nil {
		return knownArgNames
	}

	def := info.def
	if def != nil {
		argDefs := def.Args()
		knownArgNames = make([]string, len(argDefs))
		for i := range argDefs {
			knownArgNames[i] = argDefs[i].Name()
		}
		// Cache in info.knownArgNames for later accesses.
		info.knownArgNames = knownArgNames
	}

	return knownArgNames
}

// DirectiveRule validates a Directive.
type DirectiveRule interface {
	CheckDirective(ctx *ValidationContext, directive *DirectiveInfo) NextCheckAction
}

// DirectiveArgumentRule validates a Argument in a Directive.
type DirectiveArgumentRule interface {
	CheckDirectiveArgument(
		ctx *ValidationContext,
		directive *DirectiveInfo,
		argDef *graphql.Argument,
		arg *ast.Argument) NextCheckAction
}

// VariableRule validates a VariableDefinition. It runs after the operation's selection set (and the
// selection sets of every fragment it transitively spreads) has been fully walked, so rules that
// depend on final variable usage information (e.g. NoUnusedVariables) observe a settled state.
type VariableRule interface {
	CheckVariable(ctx *ValidationContext, variable *ast.VariableDefinition, ttype graphql.Type) NextCheckAction
}

// VariableInfo tracks the declaration and accumulated usage of one variable within the operation
// currently being walked.
type VariableInfo struct {
	definition *ast.VariableDefinition
	ttype      graphql.Type
	used       bool
}

// Name returns the variable's name (without the leading "$").
func (info *VariableInfo) Name() string {
	return info.definition.Variable.Name.Value()
}

// Node returns the VariableDefinition AST node.
func (info *VariableInfo) Node() *ast.VariableDefinition {
	return info.definition
}

// TypeDef returns the type the variable is declared with, or nil if it names an unknown type.
func (info *VariableInfo) TypeDef() graphql.Type {
	return info.ttype
}

// Used returns true once MarkUsed has been called for the variable.
func (info *VariableInfo) Used() bool {
	return info.used
}

// MarkUsed records that the variable was referenced by some value in the operation.
func (info *VariableInfo) MarkUsed() {
	info.used = true
}

// VariableUsageRule validates one occurrence of a variable reference (an ast.Variable value) found
// anywhere in the operation's selection set or in the selection set of any fragment it transitively
// spreads. info is nil when the usage refers to a variable that the operation never declares.
type VariableUsageRule interface {
	CheckVariableUsage(
		ctx *ValidationContext,
		ttype graphql.Type,
		variable ast.Variable,
		hasLocationDefaultValue bool,
		info *VariableInfo) NextCheckAction
}

// ValueRule validates a literal Value, including each element of a ListValue and each field value of
// an ObjectValue as they are descended into.
type ValueRule interface {
	CheckValue(ctx *ValidationContext, valueType graphql.Type, value ast.Value) NextCheckAction
}

// DirectivesRule validates the whole list of Directives attached to one location before its
// individual Directive nodes are visited.
type DirectivesRule interface {
	CheckDirectives(ctx *ValidationContext, directives ast.Directives, location graphql.DirectiveLocation) NextCheckAction
}
