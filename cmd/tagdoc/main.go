package main

import (
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/tagdoc/cmd/tagdoc/commands"
	tderrors "git.home.luguber.info/inful/tagdoc/internal/errors"
	"git.home.luguber.info/inful/tagdoc/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("tagdoc"),
		kong.Description("Merge annotated class tables into reference documentation."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	global := &commands.Global{Logger: slog.Default(), RunID: uuid.NewString()}
	err := ctx.Run(global, cli)
	tderrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
}
