package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	keepGoing bool
	noMmap    bool
)

var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "ringitem",
	Short: "Inspect NSCL ring item event files",
	Long: "Decodes NSCL ring item event files without copying them.\n" +
		"Plain files are memory-mapped; .zst, .s2 and .lz4 files are decompressed first.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetLevel(logrus.InfoLevel)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		return nil
	},
}

func init() {
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.BoolVarP(&keepGoing, "keep-going", "k", false, "Log failing files and continue with the next one")
	flags.BoolVar(&noMmap, "no-mmap", false, "Read plain files into memory instead of mapping them")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
