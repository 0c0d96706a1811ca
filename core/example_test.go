package core_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
)

// ExamplePath rebuilds a route from a hand-made chain of nodes.
func ExamplePath() {
	root := core.NewRoot("home")
	park := core.NewChild("park", root, 1, 0)
	shop := core.NewChild("shop", park, 2, 0)

	fmt.Println(core.Path(shop))
	fmt.Println("depth:", shop.Depth())
	// Output:
	// [home park shop]
	// depth: 2
}
