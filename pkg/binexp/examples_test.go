package binexp_test

import (
	"fmt"
	"log"

	"treemath/binexpr/pkg/binexp"
	"treemath/binexpr/pkg/binexp/render"
	"treemath/binexpr/pkg/binexp/simplify"
)

func ExampleSimplifyToPrefix() {
	out, err := binexp.SimplifyToPrefix("+ 1 * 0 1")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output: 1
}

func ExampleParseString() {
	tree, err := binexp.ParseString("* + 1 2 3")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(render.Infix(tree))
	fmt.Println(render.Postfix(tree))
	// Output:
	// ((1 + 2) * 3)
	// 1 2 + 3 *
}

func ExampleSimplify_withoutFolding() {
	tree, err := binexp.ParseString("+ 1 + 2 0")
	if err != nil {
		log.Fatal(err)
	}

	s := simplify.NewSimplifier().WithConstantFolding(false)
	out, err := s.Simplify(tree)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(render.Prefix(out))
	// Output: + 1 2
}
