package rules_test

import (
	"testing"

	"github.com/sorilab/sori/internal/domain/model"
	"github.com/sorilab/sori/internal/domain/rules"
	. "github.com/smartystreets/goconvey/convey"
)

// word builds a single-word assessment, marking the last phoneme word-final.
func word(phonemes ...model.PhonemeAssessment) model.WordAssessment {
	if len(phonemes) > 0 {
		phonemes[len(phonemes)-1].WordFinal = true
	}
	return model.WordAssessment{Text: "w", Phonemes: phonemes}
}

func TestEvaluateScenario(t *testing.T) {
	Convey("Given low completeness, good fluency, and one weak word-final r", t, func() {
		engine := rules.NewEngine()
		in := model.NormalizedAssessment{
			Completeness: 60,
			Fluency:      90,
			Words: []model.WordAssessment{
				word(model.PhonemeAssessment{Symbol: "r", Accuracy: 50}),
			},
		}

		issues := engine.Evaluate(in)

		Convey("Then completeness fires first with impact 125", func() {
			So(issues, ShouldHaveLength, 2)
			So(issues[0].Code, ShouldEqual, "completeness_low")
			So(issues[0].Category, ShouldEqual, model.IssueCompleteness)
			So(issues[0].Impact, ShouldEqual, 125) // 100 + (85 - 60)
		})

		Convey("Then r fires as a strong core-phoneme issue with impact 73", func() {
			So(issues[1].Code, ShouldEqual, "phoneme_r_strong")
			So(issues[1].Detail, ShouldEqual, "r")
			So(issues[1].Impact, ShouldEqual, 73) // 40 + (80-50) + 2*1 + 1
		})

		Convey("Then fluency at 90 does not fire", func() {
			for _, issue := range issues {
				So(issue.Code, ShouldNotEqual, "fluency_low")
			}
		})
	})
}

func TestEvaluateCapAndOrdering(t *testing.T) {
	Convey("Given an assessment where three rules fire", t, func() {
		engine := rules.NewEngine()
		in := model.NormalizedAssessment{
			Completeness: 60, // impact 125
			Fluency:      50, // impact 85
			Words: []model.WordAssessment{
				word(model.PhonemeAssessment{Symbol: "θ", Accuracy: 10}), // impact 40+70+2+1 = 113
			},
		}

		issues := engine.Evaluate(in)

		Convey("Then only the top two by impact survive", func() {
			So(issues, ShouldHaveLength, 2)
			So(issues[0].Code, ShouldEqual, "completeness_low")
			So(issues[1].Code, ShouldEqual, "phoneme_θ_strong")
		})
	})

	Convey("Given two phoneme issues with identical impact", t, func() {
		engine := rules.NewEngine()
		// Both symbols: one occurrence, not word-final, accuracy 70.
		// Impact = 20 + 10 + 0 + 1 = 31 for each non-core symbol.
		in := model.NormalizedAssessment{
			Completeness: 100,
			Fluency:      100,
			Words: []model.WordAssessment{
				{Phonemes: []model.PhonemeAssessment{
					{Symbol: "ŋ", Accuracy: 70},
					{Symbol: "dʒ", Accuracy: 70},
					{Symbol: "ə", Accuracy: 100, WordFinal: true},
				}},
			},
		}

		issues := engine.Evaluate(in)

		Convey("Then first-encounter order breaks the tie", func() {
			So(issues, ShouldHaveLength, 2)
			So(issues[0].Impact, ShouldEqual, issues[1].Impact)
			So(issues[0].Detail, ShouldEqual, "ŋ")
			So(issues[1].Detail, ShouldEqual, "dʒ")
		})
	})

	Convey("Given a clean assessment", t, func() {
		engine := rules.NewEngine()
		in := model.NormalizedAssessment{
			Completeness: 100,
			Fluency:      100,
			Words: []model.WordAssessment{
				word(model.PhonemeAssessment{Symbol: "s", Accuracy: 95}),
			},
		}

		Convey("Then no issues fire", func() {
			So(engine.Evaluate(in), ShouldBeEmpty)
		})
	})
}

func TestEvaluatePhonemeAggregation(t *testing.T) {
	engine := rules.NewEngine()

	Convey("Given a symbol whose mean stays at or above 80", t, func() {
		in := model.NormalizedAssessment{
			Completeness: 100,
			Fluency:      100,
			Words: []model.WordAssessment{
				// Mean of 60 and 100 across two words is exactly 80.
				word(model.PhonemeAssessment{Symbol: "l", Accuracy: 60}),
				word(model.PhonemeAssessment{Symbol: "l", Accuracy: 100}),
			},
		}

		Convey("Then one low occurrence alone never produces an issue", func() {
			So(engine.Evaluate(in), ShouldBeEmpty)
		})
	})

	Convey("Given the same symbol with and without a word-final occurrence", t, func() {
		base := model.NormalizedAssessment{
			Completeness: 100,
			Fluency:      100,
			Words: []model.WordAssessment{
				{Phonemes: []model.PhonemeAssessment{
					{Symbol: "v", Accuracy: 50},
					{Symbol: "ə", Accuracy: 100, WordFinal: true},
				}},
			},
		}
		withFinal := model.NormalizedAssessment{
			Completeness: 100,
			Fluency:      100,
			Words: []model.WordAssessment{
				{Phonemes: []model.PhonemeAssessment{
					{Symbol: "v", Accuracy: 50, WordFinal: true},
				}},
			},
		}

		Convey("Then a word-final occurrence adds exactly 2 impact", func() {
			without := engine.Evaluate(base)
			with := engine.Evaluate(withFinal)
			So(without, ShouldHaveLength, 1)
			So(with, ShouldHaveLength, 1)
			So(with[0].Impact-without[0].Impact, ShouldEqual, 2)
		})
	})

	Convey("Given core and non-core symbols with the same stats", t, func() {
		coreIn := model.NormalizedAssessment{
			Completeness: 100, Fluency: 100,
			Words: []model.WordAssessment{
				{Phonemes: []model.PhonemeAssessment{{Symbol: "tʃ", Accuracy: 70}}},
			},
		}
		otherIn := model.NormalizedAssessment{
			Completeness: 100, Fluency: 100,
			Words: []model.WordAssessment{
				{Phonemes: []model.PhonemeAssessment{{Symbol: "k", Accuracy: 70}}},
			},
		}

		Convey("Then the core symbol carries a base 20 higher", func() {
			core := engine.Evaluate(coreIn)
			other := engine.Evaluate(otherIn)
			So(core[0].Impact-other[0].Impact, ShouldEqual, 20)
		})
	})

	Convey("Given severity boundaries", t, func() {
		at65 := model.NormalizedAssessment{
			Completeness: 100, Fluency: 100,
			Words: []model.WordAssessment{
				{Phonemes: []model.PhonemeAssessment{{Symbol: "z", Accuracy: 65}}},
			},
		}
		below65 := model.NormalizedAssessment{
			Completeness: 100, Fluency: 100,
			Words: []model.WordAssessment{
				{Phonemes: []model.PhonemeAssessment{{Symbol: "z", Accuracy: 64.9}}},
			},
		}

		Convey("Then mean exactly 65 is a warn, below 65 is strong", func() {
			So(engine.Evaluate(at65)[0].Code, ShouldEqual, "phoneme_z_warn")
			So(engine.Evaluate(below65)[0].Code, ShouldEqual, "phoneme_z_strong")
		})
	})

	Convey("Given phonemes with empty symbols", t, func() {
		in := model.NormalizedAssessment{
			Completeness: 100, Fluency: 100,
			Words: []model.WordAssessment{
				{Phonemes: []model.PhonemeAssessment{
					{Symbol: "", Accuracy: 0},
					{Symbol: "", Accuracy: 0, WordFinal: true},
				}},
			},
		}

		Convey("Then they are skipped entirely", func() {
			So(engine.Evaluate(in), ShouldBeEmpty)
		})
	})
}
