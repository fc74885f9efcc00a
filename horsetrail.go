// Package horsetrail compiles path templates mixing literal text and typed
// placeholders, e.g. "users/{id:int}/posts/{slug}", into a searchable trie
// and resolves incoming request paths against it. A successful lookup
// returns the variables bound by the winning template, converted to their
// declared types, together with the payload registered with that template.
//
// The engine performs no I/O and knows nothing about HTTP methods, headers
// or handlers; it is the compile+match core a dispatch layer is built on.
package horsetrail

import (
	"github.com/trollfot/horsetrail/core/rtr"
	"github.com/trollfot/horsetrail/types"
	"go.uber.org/zap"
)

// Payload is the namespace registered with a template and returned verbatim
// on a successful lookup. Re-registering a template merges payloads key-wise.
type Payload = rtr.Payload

// Match is the result of a successful lookup.
// Vars maps each placeholder name to its converted value; placeholders
// without a converter bind the raw substring. A literal-only template
// yields an empty, non-nil Vars.
type Match struct {
	Vars    map[string]any
	Payload Payload
}

// TableOptions configures a RouteTable. The zero value works: it means the
// built-in placeholder types and no logging.
type TableOptions struct {
	Registry *types.Registry
	Logger   *zap.Logger
}

// RouteTable is the public surface of the routing engine.
//
// Lookups are read-only, so any number may run concurrently once the table
// is no longer being added to. Add mutates the trie in place; callers mixing
// Add and Lookup must serialize them.
type RouteTable struct {
	tree     *rtr.Tree
	registry *types.Registry
	logger   *zap.Logger
}

// NewRouteTable creates an empty route table.
func NewRouteTable(options ...TableOptions) *RouteTable {
	var opts TableOptions
	if len(options) > 0 {
		opts = options[0]
	}

	if opts.Registry == nil {
		opts.Registry = types.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &RouteTable{
		tree:     rtr.New(opts.Registry),
		registry: opts.Registry,
		logger:   opts.Logger,
	}
}

// Types returns the table's placeholder type registry, so callers can
// Register additional types before adding templates that use them.
func (rt *RouteTable) Types() *types.Registry {
	return rt.registry
}

// Add registers a template with its payload. Leading and trailing slashes
// are ignored; a template that is empty after trimming is a silent no-op.
// Malformed templates are rejected without corrupting the table.
func (rt *RouteTable) Add(template string, payload Payload) error {
	if err := rt.tree.Add(template, payload); err != nil {
		return err
	}

	rt.logger.Debug("route registered", zap.String("template", template))
	return nil
}

// Lookup resolves a request path. It returns:
//   - a *Match when some template covers the path
//   - (nil, nil) when none does; no-match is an outcome, not an error
//   - a non-nil error only when a converter rejected a capture that had
//     already satisfied its type's pattern, which aborts the search
func (rt *RouteTable) Lookup(path string) (*Match, error) {
	vars, payload, found, err := rt.tree.Lookup(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &Match{Vars: vars, Payload: payload}, nil
}

// ListRoutes returns the registered templates with a rendering of their
// payloads, in deterministic order.
func (rt *RouteTable) ListRoutes() []rtr.RouteList {
	return rt.tree.ListRoutes()
}
