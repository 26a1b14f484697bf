package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/examiz/internal/bank"
	"github.com/abhisek/examiz/internal/curriculum"
	"github.com/abhisek/examiz/internal/generator"
	"github.com/abhisek/examiz/internal/recommend"
)

// SubmissionSource reads a student's submission history from the backing
// store.
type SubmissionSource interface {
	SubmissionsByUserSubject(ctx context.Context, userID, subjectID string) ([]Submission, error)
	SubmissionsByUser(ctx context.Context, userID string) ([]Submission, error)
}

// AssessmentSource resolves stored assessments by id. Absent assessments
// return (nil, nil).
type AssessmentSource interface {
	Assessment(ctx context.Context, id string) (*generator.GeneratedAssessment, error)
}

// Service computes mastery diagnostics and study recommendations from the
// submission history. All operations are stateless, request-scoped reads;
// the only write is the best-effort pace-profile cache update.
type Service struct {
	subs        SubmissionSource
	assessments AssessmentSource
	tree        *curriculum.Tree
	cache       PaceCache // optional
	predictor   Predictor // optional
	log         *slog.Logger
	now         func() time.Time
}

// NewService wires an analytics service. cache and predictor may be nil;
// a nil logger discards output.
func NewService(subs SubmissionSource, assessments AssessmentSource, tree *curriculum.Tree, cache PaceCache, predictor Predictor, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		subs:        subs,
		assessments: assessments,
		tree:        tree,
		cache:       cache,
		predictor:   predictor,
		log:         log,
		now:         time.Now,
	}
}

// Diagnose produces the per-subject weakness report and recommendation set
// for a student. Returns *InsufficientDataError when the student has no
// submissions for the subject; never a misleading all-zero report.
func (s *Service) Diagnose(ctx context.Context, userID, subjectID string) (*DiagnosticReport, error) {
	subs, err := s.subs.SubmissionsByUserSubject(ctx, userID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	if len(subs) == 0 {
		return nil, &InsufficientDataError{UserID: userID, SubjectID: subjectID}
	}

	resolve, err := s.levelResolver(ctx, subs)
	if err != nil {
		return nil, err
	}

	return s.buildReport(ctx, userID, subjectID, subs, resolve), nil
}

// Comprehensive produces per-subject reports across the student's entire
// history plus an overall pass probability and, when a predictor is
// configured, an auxiliary prediction. Per-subject reads fan out
// concurrently; tallies are computed only after every read completed.
func (s *Service) Comprehensive(ctx context.Context, userID string) (*ComprehensiveReport, error) {
	all, err := s.subs.SubmissionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	if len(all) == 0 {
		return nil, &InsufficientDataError{UserID: userID}
	}

	bySubject := make(map[string][]Submission)
	for _, sub := range all {
		bySubject[sub.SubjectID] = append(bySubject[sub.SubjectID], sub)
	}

	subjectIDs := make([]string, 0, len(bySubject))
	for id := range bySubject {
		subjectIDs = append(subjectIDs, id)
	}
	sort.Strings(subjectIDs)

	reports := make([]DiagnosticReport, len(subjectIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, subjectID := range subjectIDs {
		g.Go(func() error {
			subs := bySubject[subjectID]
			resolve, err := s.levelResolver(gctx, subs)
			if err != nil {
				return err
			}
			reports[i] = *s.buildReport(gctx, userID, subjectID, subs, resolve)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	avg := AverageScore(all)
	report := &ComprehensiveReport{
		UserID:          userID,
		Subjects:        reports,
		SubmissionCount: len(all),
		AverageScore:    avg,
		PassProbability: PassProbability(avg, len(all), comprehensiveBonusThreshold),
	}

	if s.predictor != nil {
		weak := 0
		for _, r := range reports {
			for _, c := range r.Competencies {
				if c.MasteryPercentage < recommend.MasteryCeiling {
					weak++
				}
			}
		}
		pred, err := s.predictor.Predict(ctx, Features{
			UserID:           userID,
			AverageScore:     avg,
			SubmissionCount:  len(all),
			WeakCompetencies: weak,
		})
		var unavailable *ErrModelUnavailable
		switch {
		case err == nil:
			report.Prediction = pred
		case errors.As(err, &unavailable):
			s.log.Warn("auxiliary predictor unavailable", "user", userID, "error", err)
		default:
			return nil, fmt.Errorf("auxiliary prediction: %w", err)
		}
	}

	return report, nil
}

// buildReport runs the aggregate/classify/recommend chain over one
// subject's submissions.
func (s *Service) buildReport(ctx context.Context, userID, subjectID string, subs []Submission, resolve LevelResolver) *DiagnosticReport {
	byCompetency, byLevel := Aggregate(subs, resolve)
	weakness := BuildWeaknessReport(byCompetency)

	pace := InferPace(subs, s.now())
	if s.cache != nil {
		if err := s.cache.SetPace(ctx, userID, pace); err != nil {
			s.log.Warn("pace cache write failed", "user", userID, "error", err)
		}
	}

	avg := AverageScore(subs)
	return &DiagnosticReport{
		UserID:          userID,
		SubjectID:       subjectID,
		SubmissionCount: len(subs),
		AverageScore:    avg,
		PassProbability: PassProbability(avg, len(subs), subjectBonusThreshold),
		Pace:            pace,
		Competencies:    weakness,
		Blooms:          BuildBloomBreakdown(byLevel),
		Recommendations: recommend.Rank(weakness.Weaknesses(), s.tree, pace.Multiplier()),
	}
}

// levelResolver fetches every assessment the submissions reference
// (concurrently, since the reads are independent) and builds the question
// id to cognitive level join. Missing assessments simply leave their
// questions unresolved.
func (s *Service) levelResolver(ctx context.Context, subs []Submission) (LevelResolver, error) {
	ids := make(map[string]struct{})
	for _, sub := range subs {
		if sub.AssessmentID != "" {
			ids[sub.AssessmentID] = struct{}{}
		}
	}

	levelByQuestion := make(map[string]bank.CognitiveLevel)
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for id := range ids {
		g.Go(func() error {
			a, err := s.assessments.Assessment(gctx, id)
			if err != nil {
				return fmt.Errorf("load assessment %s: %w", id, err)
			}
			if a == nil {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, it := range a.Items {
				levelByQuestion[it.ID] = it.CognitiveLevel
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return func(questionID string) (bank.CognitiveLevel, bool) {
		level, ok := levelByQuestion[questionID]
		return level, ok
	}, nil
}
