package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kingsford-Group/bibparse/config"
)

var (
	rootCmd = &cobra.Command{
		Use:          "bibparse",
		Short:        "bibparse",
		SilenceUsage: true,
		Long:         "Tokenizes and assembles BibTeX-style bibliographic databases.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	configPath string
	jsonOutput bool
	verbose    bool

	logger = logrus.StandardLogger()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a bibparse.yaml parse-time policy file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit results as JSON instead of a human-readable dump")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging (token and entry counts)")
	return rootCmd.Execute()
}

// loadConfig reads configPath if set, otherwise returns the default policy.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func openInput(args []string) (*os.File, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
