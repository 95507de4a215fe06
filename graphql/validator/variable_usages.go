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

// variableUsage records one occurrence of a variable reference found while collecting the set of
// variable usages reachable from an operation.
type variableUsage struct {
	node                    ast.Variable
	ttype                   graphql.Type
	hasLocationDefaultValue bool
}

// VariableUsages returns every variable reference reachable from the operation's selection set,
// including those found in the selection sets of fragments it spreads directly or transitively. The
// result is memoized per operation.
//
// Unlike the live AST walk (which visits each FragmentDefinition exactly once, at the top level, and
// never re-descends into it from a spread site) this performs its own recursive descent so that a
// fragment's variable usages are attributed to every operation that reaches it, each tagged with the
// type expected at that particular usage site.
func (ctx *ValidationContext) VariableUsages(operation *ast.OperationDefinition) []variableUsage {
	if ctx.variableUsagesByOperation == nil {
		ctx.variableUsagesByOperation = map[*ast.OperationDefinition][]variableUsage{}
	}

	if usages, cached := ctx.variableUsagesByOperation[operation]; cached {
		return usages
	}

	collector := &variableUsageCollector{
		ctx:     ctx,
		visited: map[string]bool{},
	}

	collector.collectFromDirectives(operation.Directives)
	collector.collectFromSelectionSet(operationRootType(ctx, operation), operation.SelectionSet)

	ctx.variableUsagesByOperation[operation] = collector.usages
	return collector.usages
}

type variableUsageCollector struct {
	ctx     *ValidationContext
	visited map[string]bool
	usages  []variableUsage
}

func (c *variableUsageCollector) collectFromSelectionSet(parentType graphql.Type, selectionSet ast.SelectionSet) {
	for _, selection := range selectionSet {
		switch selection := selection.(type) {
		case *ast.Field:
			c.collectFromField(parentType, selection)

		case *ast.InlineFragment:
			nextParentType := parentType
			if selection.HasTypeCondition() {
				nextParentType = c.ctx.TypeResolver().ResolveType(selection.TypeCondition)
			}
			c.collectFromDirectives(selection.Directives)
			c.collectFromSelectionSet(nextParentType, selection.SelectionSet)

		case *ast.FragmentSpread:
			c.collectFromDirectives(selection.Directives)

			name := selection.Name.Value()
			if c.visited[name] {
				continue
			}
			c.visited[name] = true

			fragmentInfo := c.ctx.FragmentInfo(name)
			if fragmentInfo == nil {
				continue
			}

			definition := fragmentInfo.Definition()
			c.collectFromDirectives(definition.Directives)
			c.collectFromSelectionSet(fragmentInfo.TypeCondition(), definition.SelectionSet)
		}
	}
}

func (c *variableUsageCollector) collectFromField(parentType graphql.Type, field *ast.Field) {
	fieldDef := c.ctx.TypeResolver().ResolveField(parentType, field)

	if fieldDef == nil {
		for _, arg := range field.Arguments {
			c.collectFromValue(nil, false, arg.Value)
		}
	} else {
		argDefs := fieldDef.Args()
		for _, arg := range field.Arguments {
			argDef := lookupArgument(argDefs, arg.Name.Value())
			if argDef == nil {
				c.collectFromValue(nil, false, arg.Value)
				continue
			}
			c.collectFromValue(argDef.Type(), argDef.HasDefaultValue(), arg.Value)
		}
	}

	c.collectFromDirectives(field.Directives)

	var fieldType graphql.Type
	if fieldDef != nil {
		fieldType = fieldDef.Type()
	}
	c.collectFromSelectionSet(fieldType, field.SelectionSet)
}

func (c *variableUsageCollector) collectFromDirectives(directives ast.Directives) {
	if len(directives) == 0 {
		return
	}

	directiveDefs := c.ctx.Schema().Directives()
	for _, directive := range directives {
		directiveDef := directiveDefs.Lookup(directive.Name.Value())
		if directiveDef == nil {
			for _, arg := range directive.Arguments {
				c.collectFromValue(nil, false, arg.Value)
			}
			continue
		}

		argDefs := directiveDef.Args()
		for _, arg := range directive.Arguments {
			argDef := lookupArgument(argDefs, arg.Name.Value())
			if argDef == nil {
				c.collectFromValue(nil, false, arg.Value)
				continue
			}
			c.collectFromValue(argDef.Type(), argDef.HasDefaultValue(), arg.Value)
		}
	}
}

func (c *variableUsageCollector) collectFromValue(valueType graphql.Type, hasLocationDefaultValue bool, value ast.Value) {
	switch value := value.(type) {
	case ast.Variable:
		c.usages = append(c.usages, variableUsage{
			node:                    value,
			ttype:                   valueType,
			hasLocationDefaultValue: hasLocationDefaultValue,
		})

	case ast.ListValue:
		elementType, elementHasDefault := listElementType(valueType)
		for _, v := range value.Values() {
			c.collectFromValue(elementType, elementHasDefault, v)
		}

	case ast.ObjectValue:
		objectType, ok := graphql.NamedTypeOf(valueType).(graphql.InputObject)
		if !ok {
			for _, field := range value.Fields() {
				c.collectFromValue(nil, false, field.Value)
			}
			return
		}

		fieldDefs := objectType.Fields()
		for _, field := range value.Fields() {
			fieldDef, exists := fieldDefs[field.Name.Value()]
			if !exists {
				c.collectFromValue(nil, false, field.Value)
				continue
			}
			c.collectFromValue(fieldDef.Type(), fieldDef.HasDefaultValue(), field.Value)
		}
	}
}

// lookupArgument finds the Argument definition with the given name, or nil if there isn't one.
func lookupArgument(argDefs []graphql.Argument, name string) *graphql.Argument {
	for i := range argDefs {
		if argDefs[i].Name() == name {
			return &argDefs[i]
		}
	}
	return nil
}

// listElementType returns the element type of a List type (unwrapping a leading NonNull) and
// whether the list type itself carries a default value slot for its elements. Input types never
// give elements of a list their own default, so the second return is always false; it exists purely
// to keep call sites symmetric with collectFromValue's other callers.
func listElementType(valueType graphql.Type) (graphql.Type, bool) {
	listType, ok := graphql.NullableTypeOf(valueType).(graphql.List)
	if !ok {
		return nil, false
	}
	elementType := listType.ElementType()
	if !graphql.IsInputType(elementType) {
		return nil, false
	}
	return elementType, false
}
