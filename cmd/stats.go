package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/analytics"
	"github.com/abhisek/examiz/internal/cache"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show bank and submission statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := opCtx(cmd)
		defer cancel()
		items, err := st.Items().Count(ctx)
		if err != nil {
			return err
		}
		assessments, err := st.Assessments().Count(ctx)
		if err != nil {
			return err
		}
		submissions, err := st.Submissions().Count(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("items:        %d\n", items)
		fmt.Printf("assessments:  %d\n", assessments)
		fmt.Printf("submissions:  %d\n", submissions)

		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return nil
		}

		subs, err := st.Submissions().SubmissionsByUser(ctx, userID)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s: %d submissions", userID, len(subs))
		if len(subs) > 0 {
			fmt.Printf(", avg %.1f%%", analytics.AverageScore(subs))
		}
		fmt.Println()

		if url := cacheURL(cmd); url != "" {
			c, err := cache.New(ctx, url)
			if err == nil {
				defer c.Close()
				if pace, ok := c.GetPace(ctx, userID); ok {
					fmt.Printf("cached pace: %s\n", pace)
				}
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Also show per-learner submission stats")
	statsCmd.Flags().String("cache-url", "", "Redis URL for the pace cache (overrides EXAMIZ_CACHE_URL env var)")
}
