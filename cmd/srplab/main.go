package main

import (
	"context"
	"os"

	"github.com/dmercier/srplab/internal/app"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application := app.New(os.Args, os.Stderr)
	os.Exit(application.Run(context.Background(), os.Stdout))
}
