// SPDX-License-Identifier: MIT
package bridging_test

import (
	"fmt"

	"github.com/katalvlaran/localcomm/bridging"
	"github.com/katalvlaran/localcomm/core"
)

// ExampleCalculator_Between scores an in-clique edge and a bridge.
func ExampleCalculator_Between() {
	g := core.NewGraph(core.WithMeasureCache())
	for _, p := range [][2]string{
		{"a1", "a2"}, {"a1", "a3"}, {"a2", "a3"},
		{"b1", "b2"}, {"b1", "b3"}, {"b2", "b3"},
		{"a3", "a4"}, {"a1", "a4"}, {"a2", "a4"},
		{"a4", "b1"},
	} {
		_, _ = g.AddEdge(p[0], p[1], 0)
	}

	calc, _ := bridging.NewCalculator(g, bridging.ELB)
	in, _ := calc.Between("a1", "a2")
	bridge, _ := calc.Between("a4", "b1")
	fmt.Printf("inside=%.2f bridge=%.2f\n", in, bridge)
	// Output:
	// inside=0.00 bridge=1.00
}
