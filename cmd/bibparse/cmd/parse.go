package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/Kingsford-Group/bibparse/bib"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Tokenizes and assembles a bibliographic database into entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		f, closeFn, err := openInput(args)
		if err != nil {
			return err
		}
		defer closeFn()

		entries, err := bib.ParseWithOptions(f, cfg.Options())
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}

		if cfg.WarnOnUnknownFields {
			warnUnknownFields(entries)
		}
		if cfg.MaxEntries > 0 && len(entries) > cfg.MaxEntries {
			return fmt.Errorf("parse: %d entries exceeds configured max_entries %d", len(entries), cfg.MaxEntries)
		}

		logger.Debugf("assembled %d entries", len(entries))

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		repr.Println(entries)
		return nil
	},
}

func warnUnknownFields(entries []bib.Entry) {
	for _, e := range entries {
		for _, field := range e.Fields {
			if field.Kind == bib.OtherField {
				logger.Warnf("%s: unrecognized field %q", e.Symbol, field.Name())
			}
		}
		if e.Type.Kind == bib.OtherEntryType {
			logger.Warnf("%s: unrecognized entry type %q", e.Symbol, e.Type.Name)
		}
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
