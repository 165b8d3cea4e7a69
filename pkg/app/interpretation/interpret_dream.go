package interpretation

import (
	"context"
	"fmt"
	"strings"
	"time"

	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	domainDream "github.com/TaskGlass/dreamvault/pkg/domain/dream"
	"github.com/TaskGlass/dreamvault/pkg/infra/metrics"
	"github.com/TaskGlass/dreamvault/pkg/infra/providers"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultSystemPrompt = "You are a thoughtful dream analyst. Offer a grounded, " +
	"compassionate interpretation of the dream below. Mention recurring symbols and " +
	"possible emotional themes. Keep it under 250 words and never present the " +
	"interpretation as fact or medical advice."

// Outcome bundles the generated interpretation with the quota state that
// paid for it so handlers can report remaining allowance.
type Outcome struct {
	Interpretation string           `json:"interpretation"`
	Quota          *appUsage.Result `json:"quota"`
}

//go:generate mockery --name=Interpreter --dir=. --output=./mocks --filename=interpreter_mock.go --case=underscore --with-expecter
type Interpreter interface {
	// Interpret generates and persists an AI interpretation for the user's
	// dream. A unit of the monthly allowance is consumed only when the whole
	// pipeline succeeds; provider or persistence failures refund it.
	Interpret(ctx context.Context, userID string, dreamID uuid.UUID) (*Outcome, error)
}

type interpreter struct {
	logger         *logrus.Logger
	dreams         domainDream.Repository
	checker        appUsage.Checker
	releaser       appUsage.Releaser
	provider       providers.Client
	providerName   string
	providerConfig *providers.Config
}

func NewInterpreter(
	logger *logrus.Logger,
	dreams domainDream.Repository,
	checker appUsage.Checker,
	releaser appUsage.Releaser,
	provider providers.Client,
	providerName string,
	providerConfig *providers.Config,
) Interpreter {
	if providerConfig.SystemPrompt == "" {
		providerConfig.SystemPrompt = defaultSystemPrompt
	}
	return &interpreter{
		logger:         logger,
		dreams:         dreams,
		checker:        checker,
		releaser:       releaser,
		provider:       provider,
		providerName:   providerName,
		providerConfig: providerConfig,
	}
}

func (i *interpreter) Interpret(ctx context.Context, userID string, dreamID uuid.UUID) (*Outcome, error) {
	// Resolve the dream before spending quota so a bad ID costs nothing.
	entry, err := i.dreams.GetByID(ctx, userID, dreamID)
	if err != nil {
		return nil, err
	}

	result, err := i.checker.CheckAndConsume(ctx, userID, plan.FeatureDreamInterpretation)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return &Outcome{Quota: result}, domain.ErrQuotaExceeded
	}

	start := time.Now()
	resp, err := i.provider.Ask(ctx, i.providerConfig, buildPrompt(entry))
	metrics.ProviderRequestDuration.
		WithLabelValues(i.providerName, string(plan.FeatureDreamInterpretation)).
		Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderErrors.
			WithLabelValues(i.providerName, string(plan.FeatureDreamInterpretation)).
			Inc()
		i.refund(ctx, userID)
		return nil, fmt.Errorf("interpretation provider: %w", err)
	}

	if err := i.dreams.SetInterpretation(ctx, userID, dreamID, resp.Response); err != nil {
		i.refund(ctx, userID)
		return nil, err
	}

	i.logger.WithFields(logrus.Fields{
		"dream_id": dreamID,
		"user_id":  userID,
		"provider": i.providerName,
		"model":    resp.Model,
	}).Debug("dream interpreted")

	return &Outcome{
		Interpretation: resp.Response,
		Quota:          result,
	}, nil
}

func (i *interpreter) refund(ctx context.Context, userID string) {
	if err := i.releaser.Release(ctx, userID, plan.FeatureDreamInterpretation); err != nil {
		i.logger.WithError(err).WithField("user_id", userID).
			Warn("failed to refund interpretation quota unit")
	}
}

func buildPrompt(entry *domainDream.Dream) string {
	var b strings.Builder
	if entry.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", entry.Title)
	}
	if entry.Mood != "" {
		fmt.Fprintf(&b, "Mood on waking: %s\n", entry.Mood)
	}
	if entry.Tags != "" {
		fmt.Fprintf(&b, "Tags: %s\n", entry.Tags)
	}
	fmt.Fprintf(&b, "Dream:\n%s", entry.Content)
	return b.String()
}
