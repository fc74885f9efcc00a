package viz_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/trollfot/horsetrail"
	"github.com/trollfot/horsetrail/viz"
)

func TestRoutesHTML(t *testing.T) {
	rt := horsetrail.NewRouteTable()
	assert.Nil(t, rt.Add("blog/{slug}", horsetrail.Payload{"view": "post"}))
	assert.Nil(t, rt.Add("users/{id:int}", horsetrail.Payload{"view": "user"}))

	html := viz.RoutesHTML(rt.ListRoutes())

	assert.True(t, strings.Contains(html, "<table"))
	assert.True(t, strings.Contains(html, "blog/{slug}"))
	assert.True(t, strings.Contains(html, "users/{id:int}"))
	assert.True(t, strings.Contains(html, "post"))
}

func TestRoutesHTMLEmpty(t *testing.T) {
	html := viz.RoutesHTML(nil)

	assert.True(t, strings.Contains(html, "Registered routes"))
}
