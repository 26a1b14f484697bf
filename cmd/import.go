package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/ingest"
	"github.com/abhisek/examiz/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import items from a JSON document into the bank",
	Long: `Import validates an item document and inserts every item that passes
taxonomy and answer-shape checks. Invalid items are reported and skipped;
they never block the valid ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := opCtx(cmd)
		defer cancel()
		report, err := ingest.Run(ctx, f, st.Items())
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderIngest(report))
		return nil
	},
}
