// Package viz renders a route table as HTML for inspection and debugging.
package viz

import (
	"github.com/rohanthewiz/element"
	"github.com/trollfot/horsetrail/core/rtr"
)

// routesTable is the component listing registered templates with their
// payloads.
type routesTable struct {
	Routes []rtr.RouteList
}

func (rt routesTable) Render(b *element.Builder) any {
	b.H2().T("Registered routes")
	b.Table("border", "1").R(
		b.Tr().R(
			b.Th().T("Template"),
			b.Th().T("Payload"),
		),
		func() any {
			for _, route := range rt.Routes {
				b.Tr().R(
					b.Td().T(route.Template),
					b.Td().T(route.PayloadRef),
				)
			}
			return nil
		}(),
	)
	return nil
}

// RoutesHTML renders the given route listing as a standalone HTML page.
func RoutesHTML(routes []rtr.RouteList) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Title().T("Route table"),
		),
		b.Body().R(
			element.RenderComponents(b, routesTable{Routes: routes}),
		),
	)

	return b.String()
}
