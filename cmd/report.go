// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/path-formatter/finding"
	"github.com/ChainSafe/path-formatter/renderer"
	"github.com/urfave/cli/v2"
)

var (
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Usage:    "format of the output. Options: text, json",
		Required: false,
		Value:    "text",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for report. Default: stdout",
		Required: false,
	}
)

// writeReport outputs the findings in the specified format.
func writeReport(findings []finding.Finding, format, outputPath string, stdout io.Writer) (err error) {
	rendererInstance, err := renderer.New(format)
	if err != nil {
		return err
	}

	output := stdout
	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("unable to close output file: %w", cerr)
			}
		}()
		output = file
	}

	return rendererInstance.Render(findings, output)
}
