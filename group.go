package horsetrail

import "path"

// Group registers templates under a common prefix.
// Groups can be nested; the prefixes join with "/".
//
// Example: table.Group("api/v1").Add("users/{id:int}", p) registers
// api/v1/users/{id:int}.
type Group struct {
	prefix string
	table  *RouteTable
}

// Group creates a registrar for templates sharing the given prefix.
func (rt *RouteTable) Group(prefix string) *Group {
	return &Group{prefix: prefix, table: rt}
}

// Group creates a sub-group nested under this group's prefix.
func (g *Group) Group(prefix string) *Group {
	return &Group{
		prefix: path.Join(g.prefix, prefix),
		table:  g.table,
	}
}

// Add registers the template under the group prefix.
func (g *Group) Add(template string, payload Payload) error {
	return g.table.Add(path.Join(g.prefix, template), payload)
}
