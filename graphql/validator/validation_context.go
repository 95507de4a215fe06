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
	internal "github.com/latticegql/validate/graphql/internal/validator"
	astutil "github.com/latticegql/validate/graphql/util/ast"
)

// A ValidationContext stores various states for running walk function and validation rules.
type ValidationContext struct {
	schema   graphql.Schema
	document ast.Document
	rules    *rules

	// Mapping FragmentDefinition's from their names; This is lazily computed on first query.
	fragments map[string]*ast.FragmentDefinition

	// FragmentInfo keyed by fragment name; Lazily populated by FragmentInfo as fragments are looked
	// up, so that every caller (the fragment's own top-level walk, every spread site, and rules such
	// as NoFragmentCycles) shares the same *FragmentInfo instance.
	fragmentInfos map[string]*FragmentInfo

	// VariableInfo for the operation currently being walked, keyed by variable name (without the
	// leading "$"). Rebuilt by beginOperationVariables each time walkOperationDefinition starts a new
	// operation and cleared by endOperationVariables when it finishes.
	variableInfos map[string]*VariableInfo

	// Memoized result of VariableUsages, keyed by the operation whose reachable variable usages were
	// collected.
	variableUsagesByOperation map[*ast.OperationDefinition][]variableUsage

	// Error list
	errs graphql.Errors

	//===----------------------------------------------------------------------------------------====//
	// States for "rules".
	//===----------------------------------------------------------------------------------------====//

	// "Skipping" state for the rule at index i; Possible values are:
	//
	// - nil: run the rule
	// - Break: stop applying the rule on any nodes
	// - an ast.Node: don't apply the rule on the child nodes of the given node
	skippingRules []interface{}

	//===----------------------------------------------------------------------------------------====//
	// States for walk functions
	//===----------------------------------------------------------------------------------------====//

	// Operation in the document that is being validated
	currentOperation *ast.OperationDefinition

	//===----------------------------------------------------------------------------------------====//
	// States for rules package
	//===----------------------------------------------------------------------------------------====//

	// UniqueOperationNames
	KnownOperationNames map[string]ast.Name

	// OverlappingFieldsCanBeMerged

	// A memoization for when two fragments are compared "between" each other for conflicts. Two
	// fragments may be compared many times, so memoizing this can dramatically improve the
	// performance of this validator.
	FragmentPairSet internal.ConflictFragmentPairSet

	// A cache for the "field map" and list of fragment names found in any given selection set.
	// Selection sets may be asked for this information multiple times, so this improves the
	// performance of this validator.
	FieldsAndFragmentNamesCache internal.FieldsAndFragmentNamesCache

	// UniqueFragmentNames
	KnownFragmentNames map[string]ast.Name

	// KnownTypeNames

	// existingTypeNames caches all type names occurred in the schema; This is lazily initialized at
	// the first time ExistingTypeNames is called. It is used by KnownTypeNames rule to make a
	// suggestion list.
	existingTypeNames []string
}

// newValidationContext initializes a validation context for validating given document.
func newValidationContext(schema graphql.Schema, document ast.Document, rules *rules) *ValidationContext {
	return &ValidationContext{
		schema:   schema,
		document: document,
		rules:    rules,

		skippingRules: make([]interface{}, rules.numRules),

		KnownOperationNames: map[string]ast.Name{},

		FragmentPairSet:             internal.NewConflictFragmentPairSet(),
		FieldsAndFragmentNamesCache: internal.NewFieldsAndFragmentNamesCache(),

		KnownFragmentNames: map[string]ast.Name{},
	}
}

// Schema returns schema of the document being validated.
func (ctx *ValidationContext) Schema() graphql.Schema {
	return ctx.schema
}

// Document returns the document being validated.
func (ctx *ValidationContext) Document() ast.Document {
	return ctx.document
}

// TypeResolver creates ast.TypeResolver to resolve type for AST nodes during validation.
func (ctx *ValidationContext) TypeResolver() astutil.TypeResolver {
	return astutil.TypeResolver{
		Schema: ctx.schema,
	}
}

// Fragment looks up the FragmentDefinition with given name in current document.
func (ctx *ValidationContext) Fragment(name string) *ast.FragmentDefinition {
	fragmentMap := ctx.fragments
	if fragmentMap == nil {
		// Build map.
		fragmentMap = map[string]*ast.FragmentDefinition{}

		for _, definition := range ctx.document.Definitions {
			if definition, ok := definition.(*ast.FragmentDefinition); ok {
				fragmentMap[definition.Name.Value()] = definition
			}
		}
	}
	return fragmentMap[name]
}

// CurrentOperation returns the operation in the document being validated.
func (ctx *ValidationContext) CurrentOperation() *ast.OperationDefinition {
	return ctx.currentOperation
}

// FragmentInfo returns the FragmentInfo for the fragment with the given name, computing and caching
// it on first access. Returns nil if no fragment with that name is defined in the document.
func (ctx *ValidationContext) FragmentInfo(name string) *FragmentInfo {
	if ctx.fragmentInfos == nil {
		ctx.fragmentInfos = map[string]*FragmentInfo{}
	}

	if info, exists := ctx.fragmentInfos[name]; exists {
		return info
	}

	fragment := ctx.Fragment(name)
	if fragment == nil {
		ctx.fragmentInfos[name] = nil
		return nil
	}

	info := &FragmentInfo{
		definition:    fragment,
		typeCondition: ctx.TypeResolver().ResolveType(fragment.TypeCondition),
	}
	ctx.fragmentInfos[name] = info
	return info
}

// beginOperationVariables prepares a fresh table of VariableInfo for the operation about to be
// walked.
func (ctx *ValidationContext) beginOperationVariables(operation *ast.OperationDefinition) {
	infos := make(map[string]*VariableInfo, len(operation.VariableDefinitions))
	for _, varDef := range operation.VariableDefinitions {
		infos[varDef.Variable.Name.Value()] = &VariableInfo{
			definition: varDef,
			ttype:      ctx.TypeResolver().ResolveType(varDef.Type),
		}
	}
	ctx.variableInfos = infos
}

// endOperationVariables discards the VariableInfo table built for the operation that was just
// walked.
func (ctx *ValidationContext) endOperationVariables() {
	ctx.variableInfos = nil
}

// VariableInfo returns the VariableInfo for the variable with the given name (without the leading
// "$") declared by the operation currently being walked. Returns nil outside of an operation walk or
// if the operation declares no such variable.
func (ctx *ValidationContext) VariableInfo(name string) *VariableInfo {
	return ctx.variableInfos[name]
}

// ReportError constructs a graphql.Error from message and args and appends to current validation
// context for reporting.
func (ctx *ValidationContext) ReportError(message string, args ...interface{}) {
	ctx.errs.Emplace(message, args...)
}

// ExistingTypeNames returns list of types declared in the schema.
func (ctx *ValidationContext) ExistingTypeNames() []string {
	existingTypeNames := ctx.existingTypeNames
	if existingTypeNames == nil {
		var (
			existingTypesMap        = ctx.Schema().TypeMap()
			existingTypesMapKeyIter = existingTypesMap.KeyIterator()
		)
		existingTypeNames = make([]string, 0, existingTypesMap.Size())
		for {
			name, err := existingTypesMapKeyIter.Next()
			if err != nil {
				break
			}
			existingTypeNames = append(existingTypeNames, name.(string))
		}

		// Cache the result in ctx.
		ctx.existingTypeNames = existingTypeNames
	}
	return existingTypeNames
}
