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

// Package rules implements the validation rules required by the GraphQL specification. Importing
// this package for its side effect (registering the rules with the validator package) is enough to
// have them run by validator.Validate:
//
//	import (
//		...
//		_ "github.com/latticegql/validate/graphql/validator/rules"
//	)
package rules

import (
	"github.com/latticegql/validate/graphql/validator"
)

func init() {
	validator.InitStandardRules(
		// Documents
		LoneAnonymousOperation{},
		SingleFieldSubscriptions{},

		// Operation name
		UniqueOperationNames{},

		// Fragments
		KnownFragmentNames{},
		NoUnusedFragments{},
		PossibleFragmentSpreads{},
		NoFragmentCycles{},
		UniqueFragmentNames{},
		FragmentsOnCompositeTypes{},

		// Variables
		UniqueVariableNames{},
		NoUndefinedVariables{},
		NoUnusedVariables{},
		VariablesAreInputTypes{},
		VariablesInAllowedPosition{},

		// Fields
		FieldsOnCorrectType{},
		ScalarLeafs{},
		OverlappingFieldsCanBeMerged{},

		// Arguments
		UniqueArgumentNames{},
		KnownArgumentNames{},
		ProvidedRequiredArguments{},

		// Values
		ValuesOfCorrectType{},
		UniqueInputFieldNames{},

		// Directives
		KnownDirectives{},
		DirectivesInValidLocations{},
		UniqueDirectivesPerLocation{},

		// Types
		KnownTypeNames{},
	)
}
