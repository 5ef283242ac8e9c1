// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/indoorjson/builder"
)

// ExampleBuildGraph builds a corridor of three rooms and prints its dual view.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithOneWay()},
		builder.Floor("L1", builder.Corridor(3)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	h, _ := g.Hypergraph()
	for _, e := range h.HyperEdges {
		fmt.Printf("%s ins=%v outs=%v\n", e.ID, e.InnerNodeset.Ins, e.InnerNodeset.Outs)
	}
	fmt.Println(g.Layers()[0].Cells)
	// Output:
	// c1 ins=[] outs=[c1-c2]
	// c2 ins=[c1-c2] outs=[c2-c3]
	// c3 ins=[c2-c3] outs=[]
	// [c1 c2 c3]
}
