package canon_test

import (
	"testing"

	"github.com/sorilab/sori/internal/domain/canon"
	"github.com/sorilab/sori/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const pascalPayload = `{
	"NBest": [{
		"PronunciationAssessment": {
			"AccuracyScore": 80,
			"FluencyScore": 90,
			"CompletenessScore": 70
		},
		"Words": [{
			"Word": "river",
			"AccuracyScore": 75,
			"Offset": 1234567,
			"Duration": 5000000,
			"TrailingSilence": 120,
			"ErrorType": "Mispronunciation",
			"Phonemes": [
				{"Phoneme": "r", "AccuracyScore": 60, "ErrorType": "Substitution"},
				{"Phoneme": "ɪ", "AccuracyScore": 88, "ErrorType": "Correct"},
				{"Phoneme": "v", "AccuracyScore": 72, "ErrorType": "Correct"},
				{"Phoneme": "ər", "AccuracyScore": 81, "ErrorType": "Correct"}
			]
		}]
	}]
}`

const camelPayload = `{
	"nBest": [{
		"pronunciationAssessment": {
			"accuracyScore": 80,
			"fluencyScore": 90,
			"completenessScore": 70
		},
		"words": [{
			"word": "river",
			"accuracyScore": 75,
			"offset": 1234567,
			"duration": 5000000,
			"trailingSilence": 120,
			"errorType": "Mispronunciation",
			"phonemes": [
				{"phoneme": "r", "accuracyScore": 60, "errorType": "Substitution"},
				{"phoneme": "ɪ", "accuracyScore": 88, "errorType": "Correct"},
				{"phoneme": "v", "accuracyScore": 72, "errorType": "Correct"},
				{"phoneme": "ər", "accuracyScore": 81, "errorType": "Correct"}
			]
		}]
	}]
}`

func TestCanonicalizeFieldResolution(t *testing.T) {
	Convey("Given payloads using a single field-naming convention", t, func() {
		pascal := canon.Canonicalize([]byte(pascalPayload))
		camel := canon.Canonicalize([]byte(camelPayload))

		Convey("Then both conventions canonicalize to the same model", func() {
			So(camel, ShouldResemble, pascal)
		})

		Convey("Then utterance scores are carried through", func() {
			So(pascal.Accuracy, ShouldEqual, 80)
			So(pascal.Fluency, ShouldEqual, 90)
			So(pascal.Completeness, ShouldEqual, 70)
		})

		Convey("Then the final score is the rounded weighted sum", func() {
			// 80*0.45 + 90*0.25 + 70*0.30 = 79.5, half rounds up
			So(pascal.FinalScore, ShouldEqual, 80)
		})

		Convey("Then word timings are converted from ticks to ms", func() {
			So(pascal.Words, ShouldHaveLength, 1)
			w := pascal.Words[0]
			So(w.StartMs, ShouldEqual, 123) // trunc(1234567 / 10000)
			So(w.EndMs, ShouldEqual, 623)   // 123 + trunc(5000000 / 10000)
			So(w.TrailingSilenceMs, ShouldEqual, 120)
			So(w.ErrorType, ShouldEqual, model.WordMispronunciation)
		})

		Convey("Then only the last phoneme of the word is word-final", func() {
			phonemes := pascal.Words[0].Phonemes
			So(phonemes, ShouldHaveLength, 4)
			So(phonemes[0].WordFinal, ShouldBeFalse)
			So(phonemes[1].WordFinal, ShouldBeFalse)
			So(phonemes[2].WordFinal, ShouldBeFalse)
			So(phonemes[3].WordFinal, ShouldBeTrue)
			So(phonemes[0].ErrorType, ShouldEqual, model.PhonemeSubstitution)
		})
	})

	Convey("Given a payload that mixes conventions across fields", t, func() {
		mixed := `{
			"nBest": [{
				"PronunciationAssessment": {
					"accuracyScore": "91.5",
					"FluencyScore": 84,
					"completenessScore": 100
				},
				"Words": [{
					"word": "ship",
					"AccuracyScore": 92,
					"phonemes": [
						{"Symbol": "ʃ", "score": 66},
						{"phoneme": "ɪ", "AccuracyScore": 95},
						{"Phoneme": "p", "accuracyScore": 90}
					]
				}]
			}]
		}`
		got := canon.Canonicalize([]byte(mixed))

		Convey("Then each field resolves independently", func() {
			So(got.Accuracy, ShouldEqual, 91.5) // numeric string accepted
			So(got.Fluency, ShouldEqual, 84)
			So(got.Completeness, ShouldEqual, 100)
			So(got.Words[0].Text, ShouldEqual, "ship")
			So(got.Words[0].Accuracy, ShouldEqual, 92)
		})

		Convey("Then phoneme symbols and scores resolve over all aliases", func() {
			phonemes := got.Words[0].Phonemes
			So(phonemes[0].Symbol, ShouldEqual, "ʃ")
			So(phonemes[0].Accuracy, ShouldEqual, 66) // "score" fallback
			So(phonemes[1].Symbol, ShouldEqual, "ɪ")
			So(phonemes[2].Accuracy, ShouldEqual, 90)
			So(phonemes[2].WordFinal, ShouldBeTrue)
		})
	})
}

func TestCanonicalizeFinalScore(t *testing.T) {
	Convey("Given a payload that supplies its own final score", t, func() {
		payload := `{
			"NBest": [{
				"PronunciationAssessment": {
					"AccuracyScore": 80,
					"FluencyScore": 90,
					"CompletenessScore": 70,
					"FinalScore": 42
				}
			}]
		}`
		got := canon.Canonicalize([]byte(payload))

		Convey("Then the supplied value is preserved, not recomputed", func() {
			So(got.FinalScore, ShouldEqual, 42)
		})
	})

	Convey("Given sub-scores whose weighted sum lands on a half", t, func() {
		payload := `{
			"nBest": [{
				"pronunciationAssessment": {
					"accuracyScore": 70,
					"fluencyScore": 70,
					"completenessScore": 75
				}
			}]
		}`
		got := canon.Canonicalize([]byte(payload))

		Convey("Then the half rounds up", func() {
			// 70*0.45 + 70*0.25 + 75*0.30 = 71.5
			So(got.FinalScore, ShouldEqual, 72)
		})
	})
}

func TestCanonicalizeDegradation(t *testing.T) {
	Convey("Given degenerate payloads", t, func() {
		zero := model.NormalizedAssessment{}

		Convey("When the payload is not JSON at all", func() {
			So(canon.Canonicalize([]byte("definitely not json")), ShouldResemble, zero)
		})

		Convey("When the payload is empty", func() {
			So(canon.Canonicalize(nil), ShouldResemble, zero)
		})

		Convey("When NBest is missing", func() {
			So(canon.Canonicalize([]byte(`{"RecognitionStatus":"Success"}`)), ShouldResemble, zero)
		})

		Convey("When NBest is empty", func() {
			So(canon.Canonicalize([]byte(`{"NBest":[]}`)), ShouldResemble, zero)
		})

		Convey("When NBest holds a non-object", func() {
			So(canon.Canonicalize([]byte(`{"NBest":[17]}`)), ShouldResemble, zero)
		})

		Convey("When the assessment node is missing", func() {
			got := canon.Canonicalize([]byte(`{"NBest":[{"Confidence":0.9}]}`))
			So(got.Accuracy, ShouldEqual, 0)
			So(got.FinalScore, ShouldEqual, 0)
			So(got.Words, ShouldBeEmpty)
		})

		Convey("When fields are mistyped", func() {
			payload := `{
				"NBest": [{
					"PronunciationAssessment": {
						"AccuracyScore": "not-a-number",
						"FluencyScore": true,
						"CompletenessScore": null
					},
					"Words": [{
						"Word": 12,
						"ErrorType": "NotAnErrorType",
						"Phonemes": [{"Phoneme": 3, "AccuracyScore": "bad"}]
					}]
				}]
			}`
			got := canon.Canonicalize([]byte(payload))
			So(got.Accuracy, ShouldEqual, 0)
			So(got.Fluency, ShouldEqual, 0)
			So(got.Completeness, ShouldEqual, 0)
			So(got.Words[0].Text, ShouldEqual, "")
			So(got.Words[0].ErrorType, ShouldEqual, model.WordCorrect)
			So(got.Words[0].Phonemes[0].Symbol, ShouldEqual, "")
			So(got.Words[0].Phonemes[0].Accuracy, ShouldEqual, 0)
			So(got.Words[0].Phonemes[0].ErrorType, ShouldEqual, model.PhonemeCorrect)
		})
	})
}
