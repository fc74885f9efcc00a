// Package types holds the placeholder type registry: the mapping from a
// type name appearing in a template placeholder ({id:int}) to the regex
// fragment that validates the capture and the conversion applied to it.
package types

import "github.com/trollfot/horsetrail/consts"

// ConvertFunc turns a raw captured substring into its typed value.
// The capture has already satisfied the type's pattern, so implementations
// only fail on semantically invalid input (e.g. digits that overflow,
// a well-formed but impossible calendar date).
type ConvertFunc func(raw string) (any, error)

// VarType pairs the regex fragment validating a capture with the conversion
// applied to it. A nil Convert keeps the capture as a plain string.
//
// The Pattern must not contain capturing groups: it is embedded inside a
// named group, and an unescaped group would shift the numbering of every
// capture after it. Use (?:...) for grouping.
type VarType struct {
	Pattern string
	Convert ConvertFunc
}

// Registry maps placeholder type names to their VarType.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	byName map[string]VarType
}

// NewRegistry creates a registry seeded with the built-in types.
func NewRegistry() *Registry {
	return &Registry{byName: builtins()}
}

// Register adds or replaces a named type. Registering over a built-in name
// shadows the built-in for templates compiled afterwards; segments already
// compiled keep the converter they were compiled with.
func (r *Registry) Register(name string, vt VarType) {
	r.byName[name] = vt
}

// Lookup resolves a type name. Unknown names are not an error: the name
// itself is taken as a raw regex fragment with identity conversion, so
// {code:[a-z]{2}} works without prior registration.
func (r *Registry) Lookup(name string) VarType {
	if name == "" {
		return VarType{Pattern: consts.PatternDefault}
	}

	if vt, ok := r.byName[name]; ok {
		return vt
	}

	return VarType{Pattern: name}
}
