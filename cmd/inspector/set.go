package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agiangrant/inspector/tw"
)

// classesPath is the pseudo-path set accepts for the literal class list.
const classesPath = "classes"

type setOptions struct {
	breakpoint string
	unset      bool
}

func newSetCmd(flags *rootFlags) *cobra.Command {
	opts := setOptions{}

	cmd := &cobra.Command{
		Use:   "set <path=value>...",
		Short: "Edit fields of the document and save it",
		Long: `Edit fields of the document and save it.

Paths name a field as in the document, e.g. padding.l, border.radius.topLeft
or typography.fontWeight. The pseudo-path "classes" replaces the literal
class list with the space-separated value. Edits go to the document's current
breakpoint unless --breakpoint is given.`,
		Example: `  inspector set padding.l=16 effects.opacity=50
  inspector set --breakpoint md padding.l=8
  inspector set --unset --breakpoint md padding.l`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}

			original := s.insp.Snapshot().Current
			if cmd.Flags().Changed("breakpoint") {
				bp, err := tw.ParseBreakpoint(opts.breakpoint)
				if err != nil {
					return err
				}
				if _, err := s.insp.SetBreakpoint(bp); err != nil {
					return err
				}
			}

			for _, arg := range args {
				if err := applyEdit(s, arg, opts.unset); err != nil {
					return err
				}
			}

			if s.insp.Snapshot().Current != original {
				if _, err := s.insp.SetBreakpoint(original); err != nil {
					return err
				}
			}
			if err := s.save(); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.insp.Classes())
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.breakpoint, "breakpoint", "b", "", "Breakpoint to edit: base, sm, md, lg, xl or 2xl")
	cmd.Flags().BoolVar(&opts.unset, "unset", false, "Remove the named paths instead of setting them")
	return cmd
}

func applyEdit(s *session, arg string, unset bool) error {
	path, value, found := strings.Cut(arg, "=")
	path = strings.TrimSpace(path)
	if path == "" || (!found && !unset) {
		return fmt.Errorf("invalid edit %q (want path=value)", arg)
	}

	if strings.EqualFold(path, classesPath) {
		if unset {
			s.insp.SetClasses(nil)
		} else {
			s.insp.SetClasses(strings.Fields(value))
		}
		return nil
	}

	var err error
	if unset {
		_, err = s.insp.Unset(path)
	} else {
		_, err = s.insp.Set(path, value)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func newClearCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <breakpoint>",
		Short: "Remove every override registered for a breakpoint and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bp, err := tw.ParseBreakpoint(args[0])
			if err != nil {
				return err
			}
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			s.insp.ClearBreakpoint(bp)
			if err := s.save(); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.insp.Classes())
			return err
		},
	}
}
