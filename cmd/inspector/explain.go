package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExplainCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "explain <class>...",
		Short:   "Show the CSS declaration each Tailwind class stands for",
		Example: `  inspector explain pl-[16px] md:-rotate-45 font-[Inter_Tight]`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, err := fmt.Fprintln(out, classTable(strings.Join(args, " "), useColor(flags.color, out)))
			return err
		},
	}
}
