package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/bank"
	"github.com/abhisek/examiz/internal/generator"
	"github.com/abhisek/examiz/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an assessment from a difficulty blueprint",
	Long: `Generate assembles an assessment by sampling the item bank against a
blueprint: a subject, an optional topic scope, a total item count, and a
difficulty mix. Either the full assessment is produced and stored, or the
command reports exactly which difficulty buckets lack supply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topics, _ := cmd.Flags().GetStringSlice("topics")
		total, _ := cmd.Flags().GetInt("total")
		easy, _ := cmd.Flags().GetFloat64("easy")
		moderate, _ := cmd.Flags().GetFloat64("moderate")
		difficult, _ := cmd.Flags().GetFloat64("difficult")
		title, _ := cmd.Flags().GetString("title")
		kind, _ := cmd.Flags().GetString("type")
		verifiedOnly, _ := cmd.Flags().GetBool("verified-only")
		seed, _ := cmd.Flags().GetInt64("seed")

		atype := generator.AssessmentType(kind)
		switch atype {
		case generator.TypeQuiz, generator.TypeDiagnostic, generator.TypeExam, generator.TypePractice:
		default:
			return fmt.Errorf("unknown assessment type %q", kind)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		selector := generator.NewSelector()
		if cmd.Flags().Changed("seed") {
			selector = generator.NewSeededSelector(seed)
		}
		svc := generator.NewService(bank.NewAccessor(st.Items()), st.Assessments(), selector, newLogger(cmd))

		ctx, cancel := opCtx(cmd)
		defer cancel()
		out, err := svc.Generate(ctx, generator.GenerateRequest{
			Blueprint: generator.Blueprint{
				SubjectID:    subject,
				TargetTopics: topics,
				TotalItems:   total,
				EasyPct:      easy,
				ModeratePct:  moderate,
				DifficultPct: difficult,
				VerifiedOnly: verifiedOnly,
			},
			Title: title,
			Type:  atype,
		})
		if err != nil {
			return err
		}

		fmt.Print(ui.RenderGeneration(out))
		return nil
	},
}

func init() {
	generateCmd.Flags().String("subject", "", "Subject identifier (required)")
	generateCmd.Flags().StringSlice("topics", nil, "Restrict sampling to these topic identifiers")
	generateCmd.Flags().Int("total", 10, "Total number of items")
	generateCmd.Flags().Float64("easy", 0.3, "Fraction of easy items")
	generateCmd.Flags().Float64("moderate", 0.4, "Fraction of moderate items")
	generateCmd.Flags().Float64("difficult", 0.3, "Fraction of difficult items")
	generateCmd.Flags().String("title", "Untitled assessment", "Assessment title")
	generateCmd.Flags().String("type", "quiz", "Assessment type: quiz, diagnostic, exam, or practice")
	generateCmd.Flags().Bool("verified-only", false, "Sample only verified items")
	generateCmd.Flags().Int64("seed", 0, "Seed the sampler for reproducible assembly")
	_ = generateCmd.MarkFlagRequired("subject")
}
