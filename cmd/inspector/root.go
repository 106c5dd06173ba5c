package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	file    string
	config  string
	verbose bool
	color   string
	width   float32
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "inspector",
		Short:         "Inspect a component's style state as Tailwind classes, CSS and HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.color {
			case colorAuto, colorAlways, colorNever:
				return nil
			}
			return fmt.Errorf("invalid --color %q (want auto, always or never)", flags.color)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.file, "file", "f", "", "State document (.yaml, .toml or .json); defaults to [document] path in inspector.toml")
	pf.StringVar(&flags.config, "config", "", "Path to inspector.toml (default: searched upwards from the working directory)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flags.color, "color", colorAuto, "Colorize output: auto, always or never")
	pf.Float32Var(&flags.width, "width", 0, "Preview at this viewport width, cascading every breakpoint it reaches")

	cmd.AddCommand(newClassesCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newHTMLCmd(flags))
	cmd.AddCommand(newExplainCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newClearCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
