package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/Kingsford-Group/bibparse/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Prints the raw token stream the tokenizer produces for a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, closeFn, err := openInput(args)
		if err != nil {
			return err
		}
		defer closeFn()

		toks, err := lexer.Tokenize(f)
		if err != nil {
			return fmt.Errorf("tokens: %w", err)
		}

		logger.Debugf("produced %d tokens", len(toks))

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(toks)
		}
		repr.Println(toks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
