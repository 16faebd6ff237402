package main

import (
	"bytes"
	"io"
	"os"

	"github.com/funhtml-go/funhtml/internal/errors"
	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		output string
		title  string
		lang   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a Markdown file to an HTML document",
		Long: `Render a Markdown file to a complete HTML document.

Without a file argument the Markdown is read from standard input. The
document is written to standard output unless --output is given.

Examples:
  funhtml render README.md -o index.html
  cat notes.md | funhtml render --title Notes`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("F500").WithDetail("render accepts at most one file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "stdin"
			var src []byte
			var err error
			if len(args) == 1 {
				name = args[0]
				src, err = os.ReadFile(name)
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return errors.New("F200").WithFile(name).Wrap(err)
			}

			if cmd.Flags().Changed("pretty") {
				a.cfg.Pretty = pretty
			}
			b, err := newBuilder(a.cfg)
			if err != nil {
				return err
			}
			doc, err := b.page(name, src, pageOptions{title: title, lang: lang})
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := b.renderer().WriteDocument(&buf, doc); err != nil {
				return errors.New("F202").Wrap(err)
			}

			if output == "" || output == "-" {
				if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return errors.New("F202").Wrap(err)
				}
				return nil
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return errors.New("F202").WithFile(output).Wrap(err)
			}
			a.logger.Debug("rendered", "input", name, "output", output, "bytes", buf.Len())
			a.success("Wrote %s (%d bytes)", output, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: standard output)")
	cmd.Flags().StringVar(&title, "title", "", "Page title (default: front matter, first heading, or file name)")
	cmd.Flags().StringVar(&lang, "lang", "", "Value of the html lang attribute")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")

	return cmd
}
