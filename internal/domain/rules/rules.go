// Package rules evaluates a normalized assessment against fixed coaching
// thresholds and returns a ranked, capped list of issues.
package rules

import (
	"math"
	"sort"

	"github.com/sorilab/sori/internal/domain/model"
)

// Rule thresholds and impact weights. These are part of the scoring
// contract shared with stored fixtures; they are deliberately not
// configurable.
const (
	phonemeWarnThreshold   = 80.0
	phonemeStrongThreshold = 65.0
	completenessThreshold  = 85.0
	fluencyThreshold       = 75.0

	completenessImpactBase = 100.0
	fluencyImpactBase      = 60.0
	corePhonemeBase        = 40.0
	otherPhonemeBase       = 20.0
	wordFinalWeight        = 2.0

	maxIssues = 2
)

// corePhonemes are the consonants learners struggle with most; issues on
// them rank above issues on other symbols.
var corePhonemes = map[string]struct{}{
	"r": {}, "l": {}, "s": {}, "ʃ": {}, "tʃ": {},
	"θ": {}, "ð": {}, "v": {}, "f": {}, "z": {},
}

// Engine evaluates coaching rules over normalized assessments. It holds no
// state; a single Engine is safe for concurrent use.
type Engine struct{}

// NewEngine creates a rule engine.
func NewEngine() *Engine {
	return &Engine{}
}

// phonemeStats accumulates per-symbol occurrence data across the utterance.
type phonemeStats struct {
	accuracySum float64
	occurrences int
	wordFinals  int
}

// Evaluate runs all rules and returns at most two issues, sorted by
// descending impact. Ties keep evaluation order: completeness, fluency,
// then phoneme symbols in first-encounter order.
func (e *Engine) Evaluate(in model.NormalizedAssessment) []model.Issue {
	var issues []model.Issue

	if in.Completeness < completenessThreshold {
		issues = append(issues, model.Issue{
			Category: model.IssueCompleteness,
			Code:     "completeness_low",
			Impact:   completenessImpactBase + (completenessThreshold - in.Completeness),
		})
	}

	if in.Fluency < fluencyThreshold {
		issues = append(issues, model.Issue{
			Category: model.IssueFluency,
			Code:     "fluency_low",
			Impact:   fluencyImpactBase + (fluencyThreshold - in.Fluency),
		})
	}

	issues = append(issues, e.phonemeIssues(in)...)

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Impact > issues[j].Impact
	})
	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	return issues
}

func (e *Engine) phonemeIssues(in model.NormalizedAssessment) []model.Issue {
	stats := make(map[string]*phonemeStats)
	var order []string // symbols in first-encounter order

	for _, word := range in.Words {
		for _, ph := range word.Phonemes {
			if ph.Symbol == "" {
				continue
			}
			st, ok := stats[ph.Symbol]
			if !ok {
				st = &phonemeStats{}
				stats[ph.Symbol] = st
				order = append(order, ph.Symbol)
			}
			st.accuracySum += ph.Accuracy
			st.occurrences++
			if ph.WordFinal {
				st.wordFinals++
			}
		}
	}

	var issues []model.Issue
	for _, symbol := range order {
		st := stats[symbol]
		mean := st.accuracySum / float64(st.occurrences)
		if mean >= phonemeWarnThreshold {
			continue
		}

		base := otherPhonemeBase
		if _, core := corePhonemes[symbol]; core {
			base = corePhonemeBase
		}
		impact := base +
			math.Max(0, phonemeWarnThreshold-mean) +
			wordFinalWeight*float64(st.wordFinals) +
			float64(st.occurrences)

		suffix := "_warn"
		if mean < phonemeStrongThreshold {
			suffix = "_strong"
		}
		issues = append(issues, model.Issue{
			Category: model.IssuePhoneme,
			Code:     "phoneme_" + symbol + suffix,
			Detail:   symbol,
			Impact:   impact,
		})
	}
	return issues
}
