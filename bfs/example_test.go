package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/core"
)

// ExampleBFS finds the fewest-hop route between two sites and stops as soon
// as the target is dequeued.
func ExampleBFS() {
	g, _ := core.NewBuilder(core.WithUndirected()).
		AddSite("AA", 0, "DD", "II", "BB").
		AddSite("BB", 13, "CC").
		AddSite("CC", 2, "DD").
		AddSite("DD", 20, "EE").
		AddSite("EE", 3).
		AddSite("II", 0).
		Build()

	res, err := bfs.BFS(g, "AA", bfs.WithStopAt("EE"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("EE")
	fmt.Println(path)
	// Output:
	// [AA DD EE]
}
