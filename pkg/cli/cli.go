package cli

import (
	"log/slog"
)

// Context carries what every command needs to run.
type Context struct {
	Log *slog.Logger
}

// CLI is the command grammar parsed by kong.
var CLI struct {
	Build BuildCmd `cmd:"" help:"Build a tree from path=value records and export the value-carrying nodes"`
	Count CountCmd `cmd:"" help:"Build a tree from path=value records and report node counts"`
}
