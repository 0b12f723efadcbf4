// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// langSpec holds the tree-sitter language and the tag query for a file
// type. Capture names follow the "definition.<subkind>" /
// "reference.<subkind>" convention; the subkind is carried through to
// the tags for display.
type langSpec struct {
	lang  *sitter.Language
	query string
}

// supportedLangs maps file extensions to their langSpec.
var supportedLangs = map[string]*langSpec{
	".go": {
		lang: golang.GetLanguage(),
		query: `
			(function_declaration name: (identifier) @definition.function)
			(method_declaration name: (field_identifier) @definition.method)
			(type_declaration (type_spec name: (type_identifier) @definition.type))
			(call_expression function: (identifier) @reference.call)
			(call_expression function: (selector_expression field: (field_identifier) @reference.call))
			(type_identifier) @reference.type
		`,
	},
	".py": {
		lang: python.GetLanguage(),
		query: `
			(function_definition name: (identifier) @definition.function)
			(class_definition name: (identifier) @definition.class)
			(call function: (identifier) @reference.call)
			(call function: (attribute attribute: (identifier) @reference.call))
		`,
	},
	".js": {
		lang: javascript.GetLanguage(),
		query: `
			(function_declaration name: (identifier) @definition.function)
			(class_declaration name: (identifier) @definition.class)
			(method_definition name: (property_identifier) @definition.method)
			(variable_declarator name: (identifier) @definition.variable)
			(call_expression function: (identifier) @reference.call)
			(call_expression function: (member_expression property: (property_identifier) @reference.call))
			(new_expression constructor: (identifier) @reference.class)
		`,
	},
	".ts": {
		lang: typescript.GetLanguage(),
		query: `
			(function_declaration name: (identifier) @definition.function)
			(class_declaration name: (type_identifier) @definition.class)
			(method_definition name: (property_identifier) @definition.method)
			(interface_declaration name: (type_identifier) @definition.interface)
			(type_alias_declaration name: (type_identifier) @definition.type)
			(enum_declaration name: (identifier) @definition.enum)
			(call_expression function: (identifier) @reference.call)
			(call_expression function: (member_expression property: (property_identifier) @reference.call))
			(new_expression constructor: (identifier) @reference.class)
			(type_identifier) @reference.type
		`,
	},
	".tsx": {
		lang: tsx.GetLanguage(),
		query: `
			(function_declaration name: (identifier) @definition.function)
			(class_declaration name: (type_identifier) @definition.class)
			(interface_declaration name: (type_identifier) @definition.interface)
			(call_expression function: (identifier) @reference.call)
			(type_identifier) @reference.type
		`,
	},
	".java": {
		lang: java.GetLanguage(),
		query: `
			(class_declaration name: (identifier) @definition.class)
			(interface_declaration name: (identifier) @definition.interface)
			(enum_declaration name: (identifier) @definition.enum)
			(method_declaration name: (identifier) @definition.method)
			(method_invocation name: (identifier) @reference.call)
			(object_creation_expression type: (type_identifier) @reference.class)
			(type_identifier) @reference.type
		`,
	},
	".rb": {
		lang: ruby.GetLanguage(),
		query: `
			(method name: (identifier) @definition.method)
			(singleton_method name: (identifier) @definition.method)
			(class name: (constant) @definition.class)
			(module name: (constant) @definition.module)
			(call method: (identifier) @reference.call)
			(constant) @reference.class
		`,
	},
	".rs": {
		lang: rust.GetLanguage(),
		query: `
			(function_item name: (identifier) @definition.function)
			(struct_item name: (type_identifier) @definition.struct)
			(enum_item name: (type_identifier) @definition.enum)
			(trait_item name: (type_identifier) @definition.trait)
			(call_expression function: (identifier) @reference.call)
			(type_identifier) @reference.type
		`,
	},
}

func init() {
	// .jsx shares the JavaScript grammar and query.
	supportedLangs[".jsx"] = supportedLangs[".js"]
}
