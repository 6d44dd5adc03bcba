package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"klafsa/internal/compressor"
	"klafsa/internal/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which compression tools are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses := compressor.Probe(nil)
		rows := make([]tui.SummaryRow, 0, len(statuses))
		available := 0
		for _, s := range statuses {
			value := "not found"
			if s.Available() {
				value = s.Path
				available++
			}
			rows = append(rows, tui.SummaryRow{
				Label: fmt.Sprintf("%s (%s)", s.Backend, s.Backend.Tool()),
				Value: value,
			})
		}
		fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))
		if available == 0 {
			return fmt.Errorf("no compression tools found in PATH")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
