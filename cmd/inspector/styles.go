package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/agiangrant/inspector/render"
)

func newStylesCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print the inline style mapping for the current breakpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}

			style := s.insp.Styles()
			if flags.width > 0 {
				style = s.insp.Preview(flags.width).Style
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := styleJSON(style)
				if err != nil {
					return err
				}
				return writeCode(out, flags.color, string(data), "json")
			}
			var b strings.Builder
			for _, d := range style.Declarations() {
				fmt.Fprintf(&b, "%s: %s\n", d.Property, d.Value)
			}
			_, err = fmt.Fprint(out, b.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the mapping as a JSON object")
	return cmd
}

// styleJSON encodes the mapping as one JSON object, keys in emission order.
func styleJSON(style render.Style) ([]byte, error) {
	decls := style.Declarations()
	if len(decls) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, d := range decls {
		key, err := json.Marshal(d.Property)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(decls)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}
