package cli

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/ringitem/source"
	"github.com/arloliu/ringitem/summary"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary FILE...",
	Short: "Report event counts, runs and sources per file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	c := summary.NewCollector()

	return eachSource(args, func(src *source.Source) error {
		c.Reset()
		if err := c.AddBuffer(src.Bytes()); err != nil {
			return err
		}

		if len(args) > 1 {
			if _, err := out.Write([]byte("== " + src.Path() + "\n")); err != nil {
				return err
			}
		}

		return c.Summary().WriteText(out)
	})
}
