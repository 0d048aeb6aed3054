package testpayloads

import (
	"fmt"

	"github.com/sorilab/sori/internal/domain/canon"
	"github.com/sorilab/sori/internal/domain/model"
	"github.com/sorilab/sori/internal/domain/rules"
)

// Bounds every output score must respect.
const (
	minScore = 0
	maxScore = 100
)

const maxSurfacedIssues = 2

// verifyPayload checks one generated result against the engine's output
// invariants and returns any violations found.
func verifyPayload(p Payload, out model.GeneratedFeedback) []string {
	var violations []string

	for name, score := range map[string]int{
		"finalScore":   out.FinalScore,
		"accuracy":     out.Accuracy,
		"fluency":      out.Fluency,
		"completeness": out.Completeness,
	} {
		if score < minScore || score > maxScore {
			violations = append(violations, fmt.Sprintf("%s out of range: %d", name, score))
		}
	}

	if out.Tier != model.TierForScore(out.FinalScore) {
		violations = append(violations, fmt.Sprintf("tier %s inconsistent with final score %d", out.Tier, out.FinalScore))
	}

	if out.FeedbackText == "" {
		violations = append(violations, "empty feedback text")
	}

	// Re-derive the issue list the composer consumed and check the
	// engine's ranking contract.
	assessment := canon.Canonicalize(p.Raw)
	issues := rules.NewEngine().Evaluate(assessment)
	if len(issues) > maxSurfacedIssues {
		violations = append(violations, fmt.Sprintf("issue list too long: %d", len(issues)))
	}
	for i := 1; i < len(issues); i++ {
		if issues[i].Impact > issues[i-1].Impact {
			violations = append(violations, fmt.Sprintf("issues not sorted by impact at index %d", i))
		}
	}

	return violations
}
