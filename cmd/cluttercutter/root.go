package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	opts := &scanFlags{}

	rootCmd := &cobra.Command{
		Use:           "cluttercutter",
		Short:         "Find unused assets in Unity projects",
		Long: "cluttercutter scans a Unity project directory for assets whose GUID is not\n" +
			"referenced by any other asset and reports them as deletion candidates.\n" +
			"The project is never modified.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.dir, "dir", "d", "", "Path to the directory to check for unused assets")
	flags.IntVarP(&opts.processes, "processes", "p", 0, "Number of parallel workers for the reference search (1-32)")
	flags.StringSliceVarP(&opts.extensions, "extensions", "e", nil, "File extensions checked for references (e.g. -e .prefab,.mat)")
	flags.StringArrayVar(&opts.excludes, "exclude", nil, "Glob pattern (relative to the Assets root) excluded from the search corpus; repeatable")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (console, json)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Emit the report as JSON instead of a table")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	_ = rootCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(newConfigCommand(&configFlag))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
