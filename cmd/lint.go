package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/ChainSafe/path-formatter/analysis"
	"github.com/ChainSafe/path-formatter/profile"
	"github.com/urfave/cli/v2"
)

var (
	LintProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the lint profile config file. Default: every analyzer for the host platform",
		Required: false,
	}
	DirFlag = &cli.PathFlag{
		Name:     "dir",
		Usage:    "Directory the package patterns are resolved from",
		Required: false,
		Value:    ".",
	}
	FailOnFindingsFlag = &cli.BoolFlag{
		Name:     "fail-on-findings",
		Usage:    "exit with status 1 when any finding is reported",
		Required: false,
		Value:    false,
	}
)

func CreateLintCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "lint",
		Usage:       "Runs Go analyzers and formats their findings",
		Description: "Runs the analyzers of the lint profile on the given package patterns, the enclosing module when none is given. Available analyzers: " + strings.Join(analysis.Names(), ", "),
		ArgsUsage:   "[packages...]",
		Action:      action,
		Flags: []cli.Flag{
			LintProfileFlag,
			DirFlag,
			FormatFlag,
			ReportOutputPathFlag,
			FailOnFindingsFlag,
		},
	}
}

var LintCommand = CreateLintCommand(LintPackages)

func LintPackages(ctx *cli.Context) error {
	prof := profile.Default()
	if path := ctx.Path(LintProfileFlag.Name); path != "" {
		loaded, err := profile.LoadProfile(path)
		if err != nil {
			return fmt.Errorf("error loading profile: %w", err)
		}
		prof = loaded
	}

	runner, err := analysis.NewRunner(prof)
	if err != nil {
		return fmt.Errorf("error creating runner: %w", err)
	}
	log.Printf("running analyzers [%s] for %s/%s", strings.Join(runner.Analyzers(), ", "), prof.GOOS, prof.GOARCH)

	findings, err := runner.Run(ctx.Context, ctx.Path(DirFlag.Name), ctx.Args().Slice()...)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	err = writeReport(
		findings,
		ctx.String(FormatFlag.Name),
		ctx.Path(ReportOutputPathFlag.Name),
		ctx.App.Writer,
	)
	if err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	if ctx.Bool(FailOnFindingsFlag.Name) && len(findings) > 0 {
		return cli.Exit(fmt.Sprintf("%d findings reported", len(findings)), 1)
	}
	return nil
}
