package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pwnholic/xkcdown/internal"
	"github.com/pwnholic/xkcdown/internal/clients"
	"github.com/pwnholic/xkcdown/internal/exports"
)

const (
	version        = "0.1.0"
	defaultTimeout = 30
	stageArguments = "arguments"
)

type Flag struct {
	Timeout int
	Output  exports.OutputFormat
	Num     *int // nil selects the latest comic
	Save    bool
	PDF     bool
	Verbose bool
}

func argumentError(err error) error {
	return internal.NewStageError(internal.ArgumentError, stageArguments, err)
}

// newRootCmd wires the flags to one comic run against site, writing any
// files into workDir.
func newRootCmd(site clients.Website, workDir string) *cobra.Command {
	flag := &Flag{Output: exports.FormatText}
	var num int

	cmd := &cobra.Command{
		Use:   "xkcdown",
		Short: "A utility to grab XKCD comics",
		Long: "xkcdown fetches the metadata of the latest (or a numbered) XKCD comic,\n" +
			"optionally saves its image to the current directory and prints it as text or JSON.",
		Example: "  xkcdown\n" +
			"  xkcdown -n 614 -o json\n" +
			"  xkcdown --num 1 --save --timeout 10",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return argumentError(fmt.Errorf("unexpected arguments: %v", args))
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if flag.Timeout < 1 {
				return argumentError(fmt.Errorf("--timeout must be at least 1 second, got %d", flag.Timeout))
			}
			if cmd.Flags().Changed("num") {
				n := num
				flag.Num = &n
			}
			if flag.Verbose {
				internal.GetDefaultLogger().SetLevel(internal.DEBUG)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			httpOpts := &clients.HTTPClientOptions{
				Timeout:   time.Duration(flag.Timeout) * time.Second,
				UserAgent: fmt.Sprintf("xkcdown/%s", version),
			}
			process := NewGenerateProcess(httpOpts, site, workDir, cmd.OutOrStdout())
			defer process.Close()
			return process.processComic(cmd.Context(), flag)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&flag.Timeout, "timeout", "t", defaultTimeout, "Set a connection timeout in seconds")
	flags.VarP(&flag.Output, "output", "o", "Print output in a format: text or json")
	flags.IntVarP(&num, "num", "n", 0, "The comic to load (default: latest)")
	flags.BoolVarP(&flag.Save, "save", "s", false, "Save image file to current directory")
	flags.BoolVarP(&flag.PDF, "pdf", "p", false, "Export the comic image as <num>.pdf in the current directory")
	flags.BoolVarP(&flag.Verbose, "verbose", "v", false, "Print debug logs to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return argumentError(err)
	})
	return cmd
}
