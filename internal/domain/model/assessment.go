// Package model contains domain models passed between layers.
package model

// Tier thresholds applied to the rounded final score.
const (
	goldThreshold   = 90
	silverThreshold = 75
)

// WordErrorType classifies how a word was produced relative to the target
// sentence. Values mirror the assessment provider's wire strings.
type WordErrorType string

const (
	WordCorrect          WordErrorType = "Correct"
	WordOmission         WordErrorType = "Omission"
	WordInsertion        WordErrorType = "Insertion"
	WordMispronunciation WordErrorType = "Mispronunciation"
)

// ParseWordErrorType maps a provider string to a WordErrorType.
// Unknown or empty values degrade to WordCorrect.
func ParseWordErrorType(s string) WordErrorType {
	switch WordErrorType(s) {
	case WordOmission, WordInsertion, WordMispronunciation:
		return WordErrorType(s)
	default:
		return WordCorrect
	}
}

// PhonemeErrorType classifies a single phoneme realization.
type PhonemeErrorType string

const (
	PhonemeCorrect      PhonemeErrorType = "Correct"
	PhonemeOmission     PhonemeErrorType = "Omission"
	PhonemeSubstitution PhonemeErrorType = "Substitution"
	PhonemeInsertion    PhonemeErrorType = "Insertion"
)

// ParsePhonemeErrorType maps a provider string to a PhonemeErrorType.
// Unknown or empty values degrade to PhonemeCorrect.
func ParsePhonemeErrorType(s string) PhonemeErrorType {
	switch PhonemeErrorType(s) {
	case PhonemeOmission, PhonemeSubstitution, PhonemeInsertion:
		return PhonemeErrorType(s)
	default:
		return PhonemeCorrect
	}
}

// PhonemeAssessment is the scored realization of a single phoneme.
type PhonemeAssessment struct {
	Symbol    string           // phonetic alphabet symbol, e.g. "r", "ʃ", "tʃ"
	Accuracy  float64          // 0-100
	ErrorType PhonemeErrorType //
	WordFinal bool             // true iff last phoneme of its parent word
}

// WordAssessment is the scored realization of a single word, with timings
// already converted to milliseconds.
type WordAssessment struct {
	Text              string
	Accuracy          float64 // 0-100
	StartMs           int64
	EndMs             int64
	TrailingSilenceMs int64
	ErrorType         WordErrorType
	Phonemes          []PhonemeAssessment
}

// NormalizedAssessment is the provider-agnostic representation of one scored
// utterance. All score fields are semantically 0-100 and unrounded.
type NormalizedAssessment struct {
	FinalScore   float64
	Accuracy     float64
	Fluency      float64
	Completeness float64
	Words        []WordAssessment
}

// IssueCategory identifies the kind of coaching issue a rule produced.
type IssueCategory string

const (
	IssuePhoneme      IssueCategory = "phoneme"
	IssueCompleteness IssueCategory = "completeness"
	IssueFluency      IssueCategory = "fluency"
)

// Issue is a single prioritized coaching point surfaced by the rule engine.
type Issue struct {
	Category IssueCategory
	Code     string  // fired rule plus severity, e.g. "phoneme_r_strong"
	Detail   string  // context such as the phoneme symbol; may be empty
	Impact   float64 // ranking weight only, never shown to the user
}

// Tier is the discrete performance grade derived from the final score.
type Tier string

const (
	TierGold   Tier = "Gold"
	TierSilver Tier = "Silver"
	TierBronze Tier = "Bronze"
)

// TierForScore classifies a rounded final score into a Tier.
func TierForScore(finalScore int) Tier {
	switch {
	case finalScore >= goldThreshold:
		return TierGold
	case finalScore >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// GeneratedFeedback is the flat result record returned to callers.
// Field names mirror the presentation layer's response schema.
type GeneratedFeedback struct {
	FinalScore   int    `json:"finalScore"`
	Accuracy     int    `json:"accuracy"`
	Fluency      int    `json:"fluency"`
	Completeness int    `json:"completeness"`
	Tier         Tier   `json:"tier"`
	FeedbackText string `json:"feedbackText"`
}
