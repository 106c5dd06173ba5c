package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/agiangrant/inspector/tw"
)

type classesOptions struct {
	breakpoint string
	table      bool
}

func newClassesCmd(flags *rootFlags) *cobra.Command {
	opts := classesOptions{}

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Print the Tailwind class string",
		Long: `Print the Tailwind class string for the document.

Without flags the aggregate string is printed: base classes followed by the
prefixed classes of every breakpoint that has overrides. --breakpoint limits
the output to one breakpoint's effective state and --width to what a viewport
of that width would apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}

			var classes string
			switch {
			case flags.width > 0:
				classes = s.insp.Preview(flags.width).Classes
			case cmd.Flags().Changed("breakpoint"):
				bp, err := tw.ParseBreakpoint(opts.breakpoint)
				if err != nil {
					return err
				}
				classes = s.insp.ClassesFor(bp)
			default:
				classes = s.insp.Classes()
			}

			out := cmd.OutOrStdout()
			if opts.table {
				_, err = fmt.Fprintln(out, classTable(classes, useColor(flags.color, out)))
				return err
			}
			_, err = fmt.Fprintln(out, classes)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.breakpoint, "breakpoint", "b", "", "Only this breakpoint: base, sm, md, lg, xl or 2xl")
	cmd.Flags().BoolVar(&opts.table, "table", false, "Show one class per row with the CSS it stands for")
	return cmd
}

// classTable lays classes out one per row next to the breakpoint they apply
// at and the declaration they expand to. Literal classes show a dash.
func classTable(classes string, color bool) string {
	rows := make([][]string, 0, len(strings.Fields(classes)))
	for _, pc := range tw.ParseClasses(classes) {
		decl, ok := tw.Explain(pc)
		property, value := decl.Property, decl.Value
		if !ok {
			property, value = "-", "-"
		}
		rows = append(rows, []string{pc.Raw, pc.Breakpoint.String(), property, value})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CLASS", "BREAKPOINT", "PROPERTY", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if !color {
				return cell
			}
			if row == table.HeaderRow {
				return cell.Inherit(headerStyle)
			}
			if col == 1 {
				return cell.Inherit(dimStyle)
			}
			return cell
		})
	return t.String()
}
