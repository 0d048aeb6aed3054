// Package template composes coaching feedback text from a normalized
// assessment and the prioritized issues the rule engine produced.
//
// Composition is a pure lookup: identical (assessment, issues, tone) input
// always yields byte-identical output. Tone selection indexes fixed phrase
// catalogs; there is no randomized phrasing.
package template

import (
	"strings"

	"github.com/sorilab/sori/internal/domain/model"
)

// Final-score bands for the praise opener.
const (
	praiseHighBand = 85.0
	praiseMidBand  = 70.0
)

// Composer builds feedback messages. It holds no state; a single Composer
// is safe for concurrent use.
type Composer struct{}

// NewComposer creates a feedback composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose concatenates, in fixed order: praise, one tip per issue, a
// mini-practice routine when any issue fired, and a closing encouragement.
// Each part is followed by a single space; the result is trimmed.
func (c *Composer) Compose(in model.NormalizedAssessment, issues []model.Issue, tone model.Tone) string {
	var b strings.Builder

	b.WriteString(c.praise(in.FinalScore, tone))
	b.WriteString(" ")

	for _, issue := range issues {
		b.WriteString(c.tip(issue, tone))
		b.WriteString(" ")
	}

	if len(issues) > 0 {
		b.WriteString(pick(tone, miniPracticeTips))
		b.WriteString(" ")
	}

	b.WriteString(pick(tone, encouragementTips))

	return strings.TrimSpace(b.String())
}

func (c *Composer) praise(finalScore float64, tone model.Tone) string {
	switch {
	case finalScore >= praiseHighBand:
		return pick(tone, praiseHigh)
	case finalScore >= praiseMidBand:
		return pick(tone, praiseMid)
	default:
		return pick(tone, praiseLow)
	}
}

func (c *Composer) tip(issue model.Issue, tone model.Tone) string {
	switch issue.Category {
	case model.IssueCompleteness:
		return pick(tone, completenessTips)
	case model.IssueFluency:
		return pick(tone, fluencyTips)
	case model.IssuePhoneme:
		return c.phonemeTip(issue.Detail, issue.Code, tone)
	default:
		return ""
	}
}

// phonemeTip dispatches on the phoneme symbol. The "s" tip is only worded
// for weak sibilants, so it requires a severity marker in the issue code;
// everything outside the catalog gets the generic articulation tip.
func (c *Composer) phonemeTip(symbol, code string, tone model.Tone) string {
	if symbol == "s" {
		if strings.Contains(code, "warn") || strings.Contains(code, "strong") {
			return pick(tone, sibilantTips)
		}
		return pick(tone, genericPhonemeTips)
	}
	if tips, ok := phonemeTips[symbol]; ok {
		return pick(tone, tips)
	}
	return pick(tone, genericPhonemeTips)
}

// pick selects the sentence for a tone, falling back to plain for values
// outside the known range.
func pick(tone model.Tone, tips toneSet) string {
	if tone < 0 || int(tone) >= len(tips) {
		return tips[model.TonePlain]
	}
	return tips[tone]
}
