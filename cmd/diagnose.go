package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/analytics"
	"github.com/abhisek/examiz/internal/cache"
	"github.com/abhisek/examiz/internal/ui"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Report mastery, risk, and study recommendations for a learner",
	Long: `Diagnose aggregates a learner's submission history into per-competency
mastery, cognitive-level breakdowns, and prioritized study recommendations.
With --subject it reports on one subject; without it, it builds a
comprehensive report across every subject the learner has touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		subjectID, _ := cmd.Flags().GetString("subject")
		log := newLogger(cmd)

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tree, err := loadCurriculum(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := opCtx(cmd)
		defer cancel()

		var paceCache analytics.PaceCache
		if url := cacheURL(cmd); url != "" {
			c, err := cache.New(ctx, url)
			if err != nil {
				log.Warn("pace cache unavailable, continuing without it", "err", err)
			} else {
				defer c.Close()
				paceCache = c
			}
		}

		svc := analytics.NewService(st.Submissions(), st.Assessments(), tree, paceCache, nil, log)

		if subjectID != "" {
			report, err := svc.Diagnose(ctx, userID, subjectID)
			if err != nil {
				return err
			}
			fmt.Print(ui.RenderDiagnostic(report))
			return nil
		}

		report, err := svc.Comprehensive(ctx, userID)
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderComprehensive(report))
		return nil
	},
}

// cacheURL returns the Redis URL from --cache-url, then EXAMIZ_CACHE_URL.
// Empty means no cache.
func cacheURL(cmd *cobra.Command) string {
	if url, _ := cmd.Flags().GetString("cache-url"); url != "" {
		return url
	}
	return os.Getenv("EXAMIZ_CACHE_URL")
}

func init() {
	diagnoseCmd.Flags().String("user", "", "Learner identifier (required)")
	diagnoseCmd.Flags().String("subject", "", "Subject identifier (omit for a comprehensive report)")
	diagnoseCmd.Flags().String("cache-url", "", "Redis URL for the pace cache (overrides EXAMIZ_CACHE_URL env var)")
	_ = diagnoseCmd.MarkFlagRequired("user")
}
