package main

import (
	"fmt"

	"github.com/trollfot/horsetrail"
	"github.com/trollfot/horsetrail/viz"
)

func main() {
	rt := horsetrail.NewRouteTable()

	// Overlapping templates that force backtracking
	fmt.Println("Adding: a/{x}/c")
	must(rt.Add("a/{x}/c", horsetrail.Payload{"route": "short"}))

	fmt.Println("Adding: a/{x}/d/{y}")
	must(rt.Add("a/{x}/d/{y}", horsetrail.Payload{"route": "long"}))

	fmt.Println("Adding: users/{id:int}")
	must(rt.Add("users/{id:int}", horsetrail.Payload{"route": "user"}))

	for _, path := range []string{"a/foo/c", "a/foo/d/bar", "users/42", "users/nope"} {
		fmt.Printf("\nLooking up: %s\n", path)

		m, err := rt.Lookup(path)
		if err != nil {
			fmt.Println("  error:", err)
			continue
		}
		if m == nil {
			fmt.Println("  no match")
			continue
		}

		fmt.Printf("  payload: %v\n", m.Payload)
		for name, val := range m.Vars {
			fmt.Printf("  %s = %v (%T)\n", name, val, val)
		}
	}

	fmt.Println("\nRoute table:")
	for _, route := range rt.ListRoutes() {
		fmt.Printf("  %-30s %s\n", route.Template, route.PayloadRef)
	}

	fmt.Println("\nHTML dump:")
	fmt.Println(viz.RoutesHTML(rt.ListRoutes()))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
