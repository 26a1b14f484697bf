package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <item-id>",
	Short: "Mark an item as verified (or unverified with --revoke)",
	Long: `Verify flips an item's verification flag. Blueprints with the
verified-only option sample exclusively from verified items, so this is how
reviewed content enters the restricted pool.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		revoke, _ := cmd.Flags().GetBool("revoke")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := opCtx(cmd)
		defer cancel()
		if err := st.Items().SetVerified(ctx, args[0], !revoke); err != nil {
			return err
		}
		state := "verified"
		if revoke {
			state = "unverified"
		}
		fmt.Printf("%s is now %s\n", args[0], state)
		return nil
	},
}

func init() {
	verifyCmd.Flags().Bool("revoke", false, "Clear the verification flag instead of setting it")
}
