package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rbsparse "github.com/clarete/rbsparse"
)

var (
	encodingName string
	requireEOF   bool
)

func readSource(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(path)
}

func resolveEncoding() (rbsparse.Encoding, error) {
	enc, ok := rbsparse.LookupEncoding(encodingName)
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", encodingName)
	}
	return enc, nil
}

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex [file]",
		Short: "Print the raw token stream of an RBS source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			source, err := readSource(path)
			if err != nil {
				return err
			}
			enc, err := resolveEncoding()
			if err != nil {
				return err
			}
			for _, tok := range rbsparse.Lex(source, len(source), enc) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s %q\n", tok.Type, tok.Range, tok.Text)
			}
			return nil
		},
	}
}

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type [file]",
		Short: "Parse a single RBS type expression and print its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			source, err := readSource(path)
			if err != nil {
				return err
			}
			enc, err := resolveEncoding()
			if err != nil {
				return err
			}
			typ, err := rbsparse.ParseType(source, 0, len(source), nil, requireEOF, rbsparse.ParserOptions{Encoding: enc})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rbsparse.PrettyPrint(typ))
			return nil
		},
	}
}

func newSigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sig [file]",
		Short: "Parse a full RBS signature file and print its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			source, err := readSource(path)
			if err != nil {
				return err
			}
			enc, err := resolveEncoding()
			if err != nil {
				return err
			}
			sig, err := rbsparse.ParseSignature(source, 0, len(source), rbsparse.ParserOptions{Encoding: enc})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rbsparse.PrettyPrint(sig))
			return nil
		},
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rbsparse",
		Short: "Lex and parse RBS type-signature source",
	}
	root.PersistentFlags().StringVar(&encodingName, "encoding", "UTF-8", "source encoding (UTF-8, US-ASCII, ASCII-8BIT, EUC-JP, Windows-31J)")
	root.PersistentFlags().BoolVar(&requireEOF, "require-eof", true, "require the whole input to be consumed (type subcommand; sig always requires it)")
	root.AddCommand(newLexCmd(), newTypeCmd(), newSigCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
