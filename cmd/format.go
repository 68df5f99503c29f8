package cmd

import (
	"fmt"
	"os"

	"github.com/ChainSafe/path-formatter/finding"
	"github.com/urfave/cli/v2"
)

var InputFormatFlag = &cli.StringFlag{
	Name:     "input-format",
	Usage:    "encoding of the findings report. Options: json, yaml. Default: inferred from the file extension, json for stdin",
	Required: false,
}

func CreateFormatCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "format",
		Usage:       "Formats a linter findings report",
		Description: "Reads findings from the given report files, or stdin when none is given, and renders them grouped under a file header",
		ArgsUsage:   "[report files...]",
		Action:      action,
		Flags: []cli.Flag{
			InputFormatFlag,
			FormatFlag,
			ReportOutputPathFlag,
		},
	}
}

var FormatCommand = CreateFormatCommand(FormatReport)

func FormatReport(ctx *cli.Context) error {
	inputFormat := finding.InputFormat(ctx.String(InputFormatFlag.Name))

	var failures []*finding.Failure
	if ctx.NArg() == 0 {
		if inputFormat == "" {
			inputFormat = finding.InputFormatJSON
		}
		decoded, err := finding.Decode(ctx.App.Reader, inputFormat)
		if err != nil {
			return fmt.Errorf("error reading findings from stdin: %w", err)
		}
		failures = decoded
	}
	for _, path := range ctx.Args().Slice() {
		decoded, err := readReport(path, inputFormat)
		if err != nil {
			return fmt.Errorf("error reading findings from %s: %w", path, err)
		}
		failures = append(failures, decoded...)
	}

	err := writeReport(
		finding.Findings(failures),
		ctx.String(FormatFlag.Name),
		ctx.Path(ReportOutputPathFlag.Name),
		ctx.App.Writer,
	)
	if err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

func readReport(path string, format finding.InputFormat) ([]*finding.Failure, error) {
	if format == "" {
		format = finding.InputFormatFromPath(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return finding.Decode(file, format)
}
