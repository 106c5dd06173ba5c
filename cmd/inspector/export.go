package main

import (
	"github.com/spf13/cobra"
)

func newCSSCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print the current breakpoint's effective state as a CSS rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			return writeCode(cmd.OutOrStdout(), flags.color, s.insp.CSS(), "css")
		},
	}
}

func newHTMLCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "html",
		Short: "Print the element as HTML with its classes and inline styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			out, err := s.insp.HTML()
			if err != nil {
				return err
			}
			return writeCode(cmd.OutOrStdout(), flags.color, out, "html")
		},
	}
}
