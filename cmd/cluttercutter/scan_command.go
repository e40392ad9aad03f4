package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"cluttercutter/internal/logging"
	"cluttercutter/internal/scan"
)

type scanFlags struct {
	dir        string
	processes  int
	extensions []string
	excludes   []string
	logLevel   string
	logFormat  string
	jsonOutput bool
	noColor    bool
}

func runScan(cmd *cobra.Command, ctx *commandContext, opts *scanFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	processes := cfg.Scan.Processes
	if cmd.Flags().Changed("processes") {
		processes = opts.processes
	}
	extensions := cfg.Scan.Extensions
	if cmd.Flags().Changed("extensions") {
		extensions = normalizeExtensions(opts.extensions)
	}
	excludes := append(append([]string(nil), cfg.Scan.Exclude...), opts.excludes...)

	logLevel := cfg.Logging.Level
	if opts.logLevel != "" {
		logLevel = opts.logLevel
	}
	logFormat := cfg.Logging.Format
	if opts.logFormat != "" {
		logFormat = opts.logFormat
	}

	if opts.noColor || opts.jsonOutput {
		color.NoColor = true
	}
	interactive := isatty.IsTerminal(os.Stderr.Fd()) && !opts.jsonOutput

	logger, err := logging.New(logging.Options{Level: logLevel, Format: logFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !opts.jsonOutput {
		printBanner(out)
		fmt.Fprintln(out, "Collecting list of assets to check in the specified directory...")
	}

	var bar *progressReporter
	scanOpts := scan.Options{
		Directory:  opts.dir,
		Processes:  processes,
		Extensions: extensions,
		Excludes:   excludes,
		Logger:     logger,
		OnIndexBuilt: func(assets int) {
			if opts.jsonOutput {
				return
			}
			fmt.Fprintf(out, "Found %s assets to check\n", highlight("%d", assets))
			fmt.Fprintln(out, "\nCollecting list of files to search through...")
		},
		OnCorpusCollected: func(files int, assetsRoot string) {
			if opts.jsonOutput {
				return
			}
			fmt.Fprintf(out, "Root Assets directory is %s\n", highlight("%s", assetsRoot))
			fmt.Fprintf(out, "Extensions to check: %s\n", highlight("%v", extensions))
			fmt.Fprintf(out, "Found %s files to search through\n\n", highlight("%d", files))
		},
		OnProgress: func(done, total int) {
			if bar != nil {
				bar.update(done, total)
			}
		},
	}
	if interactive {
		bar = newProgressReporter(cmd.ErrOrStderr())
	}

	report, err := scan.Run(cmd.Context(), scanOpts)
	if bar != nil {
		bar.finish()
	}
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return writeJSONReport(out, report)
	}
	printReport(out, report)
	return nil
}

func normalizeExtensions(extensions []string) []string {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}
