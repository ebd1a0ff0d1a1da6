package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-keytree/keytree/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := ctx.Run(&cli.Context{Log: log}); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
