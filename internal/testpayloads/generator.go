package testpayloads

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	speakerCaseCount   = 4
	casingCaseCount    = 3
)

// Speaker profile cases, mirroring how utterances tend to cluster.
const (
	caseStrongSpeaker = iota
	caseAverageSpeaker
	caseWeakSpeaker
	caseIncompleteSpeaker
)

// Casing convention cases for generated payload keys.
const (
	casingPascal = iota
	casingCamel
	casingMixed
)

// Score ranges per speaker profile.
const (
	strongScoreMin    = 88.0
	strongScoreRange  = 12.0
	averageScoreMin   = 70.0
	averageScoreRange = 18.0
	weakScoreMin      = 40.0
	weakScoreRange    = 30.0
)

// ticksPerMillisecond mirrors the provider's offset/duration tick unit.
const ticksPerMillisecond = 10_000

// lexiconEntry is a word with its phoneme decomposition, covering the
// coached consonant catalog plus a few plain symbols.
type lexiconEntry struct {
	word     string
	phonemes []string
}

var lexicon = []lexiconEntry{
	{"river", []string{"r", "ɪ", "v", "ər"}},
	{"ship", []string{"ʃ", "ɪ", "p"}},
	{"think", []string{"θ", "ɪ", "ŋ", "k"}},
	{"this", []string{"ð", "ɪ", "s"}},
	{"cheese", []string{"tʃ", "iː", "z"}},
	{"fall", []string{"f", "ɔː", "l"}},
	{"zoo", []string{"z", "uː"}},
	{"sun", []string{"s", "ʌ", "n"}},
	{"light", []string{"l", "aɪ", "t"}},
	{"voice", []string{"v", "ɔɪ", "s"}},
}

// Payload is one generated raw payload with bookkeeping for reports.
type Payload struct {
	ID      string          `json:"id"`
	Casing  string          `json:"casing"`
	Speaker int             `json:"speaker_case"`
	Raw     json.RawMessage `json:"raw"`
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func getRandomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generatePayloads creates cfg.NumPayloads synthetic provider payloads.
func generatePayloads(cfg *Config) ([]Payload, error) {
	payloads := make([]Payload, 0, cfg.NumPayloads)
	for i := 0; i < cfg.NumPayloads; i++ {
		p, err := generateSinglePayload()
		if err != nil {
			return nil, fmt.Errorf("failed to generate payload %d: %w", i, err)
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}

func generateSinglePayload() (Payload, error) {
	speaker := getRandomInt(speakerCaseCount)
	casing := getRandomInt(casingCaseCount)

	accuracy := profileScore(speaker)
	fluency := profileScore(speaker)
	completeness := profileScore(speaker)
	if speaker == caseIncompleteSpeaker {
		// Dropped words: completeness well under the rule threshold.
		completeness = weakScoreMin + getRandomFloat()*20.0
	}

	wordCount := 2 + getRandomInt(4)
	words := make([]any, 0, wordCount)
	offset := int64(getRandomInt(500)) * ticksPerMillisecond
	for w := 0; w < wordCount; w++ {
		entry := lexicon[getRandomInt(len(lexicon))]
		duration := int64(200+getRandomInt(400)) * ticksPerMillisecond

		phonemes := make([]any, 0, len(entry.phonemes))
		for _, symbol := range entry.phonemes {
			phonemes = append(phonemes, keyed(casing, map[string]any{
				"Phoneme":       symbol,
				"AccuracyScore": profileScore(speaker),
				"ErrorType":     "Correct",
			}))
		}

		words = append(words, keyed(casing, map[string]any{
			"Word":            entry.word,
			"AccuracyScore":   profileScore(speaker),
			"Offset":          offset,
			"Duration":        duration,
			"TrailingSilence": int64(getRandomInt(300)),
			"ErrorType":       "Correct",
			"Phonemes":        phonemes,
		}))
		offset += duration
	}

	root := keyed(casing, map[string]any{
		"NBest": []any{keyed(casing, map[string]any{
			"PronunciationAssessment": keyed(casing, map[string]any{
				"AccuracyScore":     accuracy,
				"FluencyScore":      fluency,
				"CompletenessScore": completeness,
			}),
			"Words": words,
		})},
	})

	raw, err := json.Marshal(root)
	if err != nil {
		return Payload{}, err
	}
	return Payload{
		ID:      uuid.New().String(),
		Casing:  casingName(casing),
		Speaker: speaker,
		Raw:     raw,
	}, nil
}

func profileScore(speaker int) float64 {
	switch speaker {
	case caseStrongSpeaker:
		return strongScoreMin + getRandomFloat()*strongScoreRange
	case caseWeakSpeaker:
		return weakScoreMin + getRandomFloat()*weakScoreRange
	default:
		return averageScoreMin + getRandomFloat()*averageScoreRange
	}
}

// keyed rewrites a pascal-keyed object into the requested casing
// convention. Mixed casing flips each key independently, which is exactly
// the payload shape the canonicalizer must tolerate.
func keyed(casing int, obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for key, value := range obj {
		switch casing {
		case casingCamel:
			out[lowerCamel(key)] = value
		case casingMixed:
			if getRandomInt(2) == 0 {
				out[lowerCamel(key)] = value
			} else {
				out[key] = value
			}
		default:
			out[key] = value
		}
	}
	return out
}

func lowerCamel(key string) string {
	if key == "" {
		return key
	}
	runes := []rune(key)
	// NBest lower-cases only the first rune, matching the provider alias.
	first := runes[0]
	if first >= 'A' && first <= 'Z' {
		runes[0] = first + ('a' - 'A')
	}
	return string(runes)
}

func casingName(casing int) string {
	switch casing {
	case casingCamel:
		return "camel"
	case casingMixed:
		return "mixed"
	default:
		return "pascal"
	}
}
