// Command fpe runs functional combinator pipelines over integer lists.
//
//	fpe demo --input 1,2,3,4,5
//	fpe run squares.yaml --style arrow
//	fpe ops
package main

import (
	"context"
	"os"
	"os/signal"

	"fpe/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.NewRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
