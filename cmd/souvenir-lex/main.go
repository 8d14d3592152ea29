package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/souvenir-lang/souvenir/pkgs/lexer"
)

func main() {
	var (
		file        string
		jsonOutput  bool
		lspOutput   bool
		diagnostics bool
		legacy      bool
	)

	rootCmd := &cobra.Command{
		Use:   "souvenir-lex",
		Short: "Classify the tokens of a Souvenir script",
		Long: "souvenir-lex scans a Souvenir script and prints its classified token\n" +
			"stream. It never fails on malformed input: unrecognized text is skipped\n" +
			"and reported as diagnostics.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(file, jsonOutput, lspOutput, diagnostics, legacy)
		},
	}

	rootCmd.Flags().StringVarP(&file, "file", "f", "-", "Path to a Souvenir script, or - for stdin")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit tokens as JSON")
	rootCmd.Flags().BoolVar(&lspOutput, "lsp", false, "Emit LSP semantic tokens instead of the token listing")
	rootCmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "Print scanner diagnostics to stderr")
	rootCmd.Flags().BoolVar(&legacy, "legacy", false, "Use the legacy identifier-casing rules")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file string, jsonOutput, lspOutput, diagnostics, legacy bool) error {
	reader, closeFunc, err := getInputReader(file)
	if err != nil {
		return err
	}
	defer func() { _ = closeFunc() }()

	source, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	var opts []lexer.Option
	if legacy {
		opts = append(opts, lexer.WithLegacyIdentifiers())
	}

	lex := lexer.New(string(source), opts...)
	tokens := lex.Tokenize()

	switch {
	case lspOutput:
		if err := printJSON(lexer.ToLSPSemanticTokensArray(tokens)); err != nil {
			return err
		}
	case jsonOutput:
		if err := printJSON(tokens); err != nil {
			return err
		}
	default:
		printListing(tokens)
	}

	if diagnostics {
		for _, diag := range lex.Diagnostics() {
			fmt.Fprintln(os.Stderr, diag)
		}
	}
	return nil
}

func printListing(tokens []lexer.Token) {
	for _, token := range tokens {
		if token.Kind == lexer.EOF {
			continue
		}
		fmt.Printf("%-10s %-15s %-12s %q\n",
			token.Position(), token.Kind, lexer.ClassOf(token.Kind), token.Text)
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return nil
}

// getInputReader returns stdin for "-" and an opened file otherwise.
func getInputReader(file string) (io.Reader, func() error, error) {
	if file == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file %s: %w", file, err)
	}

	return f, f.Close, nil
}
