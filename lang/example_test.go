package lang_test

import (
	"context"
	"fmt"

	"github.com/ardnew/curry/lang"
)

func Example() {
	ctx := context.Background()

	prog, err := lang.ParseString(ctx, `
		(* K and C combinators *)
		val const = fun x y -> x ;
		val flip  = fun f x y -> f y x ;
	`)
	if err != nil {
		fmt.Println(err)

		return
	}

	s, err := lang.NewSession(ctx, prog)
	if err != nil {
		fmt.Println(err)

		return
	}

	for _, src := range []string{"const 1,024 `x`", "flip const 1,024 `x`", "const 0"} {
		v, err := s.Evaluate(ctx, src)
		if err != nil {
			fmt.Println(err)

			continue
		}

		fmt.Println(v)
	}

	_, err = s.Evaluate(ctx, "missing")
	fmt.Println(err)

	// Output:
	// 1024
	// `x`
	// <closure/1>
	// resolve error at line 1, column 1: free variable: missing
	//   1 | missing
	//       ^
}

func ExampleSourceError() {
	_, err := lang.ParseString(context.Background(), "val id = fun x -> ;")
	fmt.Println(err)

	// Output:
	// parse error at line 1, column 1: expected declaration, found "val"
	//   1 | val id = fun x -> ;
	//       ^
}
