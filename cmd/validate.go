package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/ingest"
	"github.com/abhisek/examiz/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an item document without importing it",
	Long: `Validate checks an item document against the wire schema, then runs every
item through taxonomy and answer-shape validation. Nothing is written to the
store; the per-item report shows what an import would accept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		report, err := ingest.Validate(cmd.Context(), f)
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderIngest(report))
		failed := 0
		for _, res := range report.Results {
			if !res.OK {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d item(s) failed validation", failed)
		}
		return nil
	},
}
