package cli

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/ringitem/dump"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/source"
)

var (
	dumpFormat string
	dumpTypes  []uint
	dumpRaw    bool
)

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "Output format (text|yaml|json)")
	dumpCmd.Flags().UintSliceVarP(&dumpTypes, "type", "t", nil, "Only print events of this item type (repeatable)")
	dumpCmd.Flags().BoolVar(&dumpRaw, "raw", false, "Include the raw event bytes in hex")
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE...",
	Short: "Print every field of every event",
	Long: "Prints each event of the given files with its offset, size, body header and\n" +
		"the fields of its ring item. Physics and user payloads are reported by size.",
	Args: cobra.MinimumNArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	f, err := dump.ParseFormat(dumpFormat)
	if err != nil {
		return err
	}

	opts := []dump.Option{dump.WithFormat(f), dump.WithRaw(dumpRaw)}
	if len(dumpTypes) > 0 {
		types := make([]format.ItemType, len(dumpTypes))
		for i, t := range dumpTypes {
			types[i] = format.ItemType(t)
		}
		opts = append(opts, dump.WithTypes(types...))
	}

	w, err := dump.NewWriter(cmd.OutOrStdout(), opts...)
	if err != nil {
		return err
	}

	walkErr := eachSource(args, func(src *source.Source) error {
		n, err := w.WriteAll(src.Bytes())
		logger.WithField("file", src.Path()).Debugf("printed %d events", n)

		return err
	})
	if err := w.Close(); err != nil {
		return err
	}

	return walkErr
}
