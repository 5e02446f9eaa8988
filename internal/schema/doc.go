// Package schema declares which configuration options dotconf may edit and
// whether each one is a scalar or a map.
//
// A schema is loaded once per invocation, either from the `options` list of
// the tool configuration or from a standalone YAML/TOML file:
//
//	options:
//	  - name: APP_ENV
//	    kind: scalar
//	  - name: FEATURE_FLAGS
//	    kind: map
//	    description: JSON object of feature toggles
//
// Lookups are exact and case-sensitive; declaration order is the display
// order of option suggestions.
package schema
