package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kobzarvs/ded/internal/app"
)

// Version is set during build with -ldflags
var version = "dev"

var opts app.Options

var rootCmd = &cobra.Command{
	Use:           "ded [file]",
	Short:         "A small modal terminal text editor",
	Long:          `ded edits one file in the terminal. A missing file is created on the first save.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return app.New(path, opts).Run()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&opts.Debug, "debug", false, "write debug-level entries to the log file")
	rootCmd.Flags().StringVar(&opts.LineNumbers, "line-numbers", "", `override [editor] line-numbers ("absolute" or "off")`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ded:", err)
		os.Exit(1)
	}
}
