package main

import (
	"context"
	"log"
	"os"

	"github.com/ChainSafe/path-formatter/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "Lint Findings Path Formatter"
	app.Description = "Renders linter findings as column-aligned, colorized text grouped under a file path"
	app.Commands = []*cli.Command{
		cmd.FormatCommand,
		cmd.LintCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
