// Package canon parses raw pronunciation-assessment payloads into the
// provider-agnostic NormalizedAssessment model.
//
// Canonicalization never fails: missing, malformed, or mistyped fields
// degrade to zero values, empty strings, or "Correct", and a wholly
// unparseable payload yields an all-zero, no-words model. Downstream
// components rely on that contract instead of handling errors.
package canon

import (
	"encoding/json"
	"math"

	"github.com/sorilab/sori/internal/domain/model"
)

// Score weights used when the payload carries no independent final score.
const (
	accuracyWeight     = 0.45
	fluencyWeight      = 0.25
	completenessWeight = 0.30
)

// ticksPerMillisecond converts the provider's offset/duration tick unit
// (100ns ticks) to milliseconds. This divisor is an external contract with
// the assessment provider; changing it breaks every stored fixture.
const ticksPerMillisecond = 10_000.0

// Canonicalize converts a raw provider payload into a NormalizedAssessment.
func Canonicalize(raw []byte) model.NormalizedAssessment {
	var out model.NormalizedAssessment

	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return out
	}

	nbest := getArray(root, "NBest", "nBest")
	if len(nbest) == 0 {
		return out
	}
	best, ok := nbest[0].(map[string]any)
	if !ok {
		return out
	}

	pa := getObject(best, "PronunciationAssessment", "pronunciationAssessment")
	out.Accuracy = getNumber(pa, "AccuracyScore", "accuracyScore", 0)
	out.Fluency = getNumber(pa, "FluencyScore", "fluencyScore", 0)
	out.Completeness = getNumber(pa, "CompletenessScore", "completenessScore", 0)
	if v, ok := lookupNumber(pa, "FinalScore", "finalScore"); ok {
		// A provider-supplied final score wins over recomputation.
		out.FinalScore = v
	} else {
		out.FinalScore = weightedFinal(out.Accuracy, out.Fluency, out.Completeness)
	}

	for _, w := range getArray(best, "Words", "words") {
		wobj, _ := w.(map[string]any)
		out.Words = append(out.Words, canonicalizeWord(wobj))
	}
	return out
}

func canonicalizeWord(wobj map[string]any) model.WordAssessment {
	word := model.WordAssessment{
		Text:              getString(wobj, "Word", "word", ""),
		Accuracy:          getNumber(wobj, "AccuracyScore", "accuracyScore", 0),
		TrailingSilenceMs: int64(getNumber(wobj, "TrailingSilence", "trailingSilence", 0)),
		ErrorType:         model.ParseWordErrorType(getString(wobj, "ErrorType", "errorType", "Correct")),
	}
	// Offsets and durations arrive in provider ticks; truncate like the
	// stored fixtures expect.
	word.StartMs = int64(getNumber(wobj, "Offset", "offset", 0) / ticksPerMillisecond)
	word.EndMs = word.StartMs + int64(getNumber(wobj, "Duration", "duration", 0)/ticksPerMillisecond)

	phonemes := getArray(wobj, "Phonemes", "phonemes")
	for i, p := range phonemes {
		pobj, _ := p.(map[string]any)
		word.Phonemes = append(word.Phonemes, canonicalizePhoneme(pobj, i == len(phonemes)-1))
	}
	return word
}

func canonicalizePhoneme(pobj map[string]any, wordFinal bool) model.PhonemeAssessment {
	ph := model.PhonemeAssessment{
		Symbol:    getString(pobj, "Phoneme", "phoneme", ""),
		ErrorType: model.ParsePhonemeErrorType(getString(pobj, "ErrorType", "errorType", "Correct")),
		WordFinal: wordFinal,
	}
	if ph.Symbol == "" {
		ph.Symbol = getString(pobj, "Symbol", "symbol", "")
	}
	if v, ok := lookupNumber(pobj, "AccuracyScore", "accuracyScore"); ok {
		ph.Accuracy = v
	} else {
		// Some provider shapes report the phoneme score under "score".
		ph.Accuracy = getNumber(pobj, "Score", "score", 0)
	}
	return ph
}

// weightedFinal approximates a final score from the three sub-scores,
// rounding half up to a whole number.
func weightedFinal(accuracy, fluency, completeness float64) float64 {
	return math.Floor(accuracy*accuracyWeight + fluency*fluencyWeight + completeness*completenessWeight + 0.5)
}
