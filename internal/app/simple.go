package app

import "strings"

// Score bands for the short-form feedback path.
const (
	simplePraiseHighBand   = 85.0
	simplePraiseMidBand    = 70.0
	simpleAccuracyBand     = 85.0
	simpleFluencyBand      = 80.0
	simpleCompletenessBand = 80.0
)

// SimpleFeedback builds a short banded feedback string from the four scores
// alone, without rule evaluation or tone selection. It predates the
// template composer and is kept for callers that only have the scores.
func SimpleFeedback(finalScore, accuracy, fluency, completeness float64) string {
	var b strings.Builder

	switch {
	case finalScore >= simplePraiseHighBand:
		b.WriteString("아주 잘했어요! ")
	case finalScore >= simplePraiseMidBand:
		b.WriteString("좋아요! 조금만 더 연습해볼까요? ")
	default:
		b.WriteString("조금 더 또박또박 발음해보면 좋겠어요! ")
	}

	if accuracy >= simpleAccuracyBand {
		b.WriteString("정확도가 높아요! ")
	} else {
		b.WriteString("단어 발음을 조금 더 정확히 해봐요. ")
	}

	if fluency >= simpleFluencyBand {
		b.WriteString("발음이 자연스럽네요! ")
	} else {
		b.WriteString("조금 더 천천히 말하면 좋아요. ")
	}

	if completeness >= simpleCompletenessBand {
		b.WriteString("전체적으로 완성도가 좋아요!")
	} else {
		b.WriteString("끝까지 문장을 마무리해보세요!")
	}

	return b.String()
}
