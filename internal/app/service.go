// Package app wires the canonicalizer, rule engine, and template composer
// into the single feedback generation entry point.
package app

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/sorilab/sori/internal/domain/canon"
	"github.com/sorilab/sori/internal/domain/model"
	"github.com/sorilab/sori/internal/domain/rules"
	"github.com/sorilab/sori/internal/domain/template"
	"github.com/sorilab/sori/pkg/logger"
	"github.com/sorilab/sori/pkg/metrics"
)

// Fallback values returned for inputs the service does not recognize.
const (
	fallbackScore = 80
	fallbackText  = "입력 형식을 확인해 주세요."
)

const nanosecondsPerMillisecond = 1e6

type inputKind int

const (
	inputUnknown inputKind = iota
	inputRaw
	inputNormalized
)

// Input is the tagged union of accepted generate inputs. Callers build one
// with RawPayload or Normalized; the zero Input is unrecognized and yields
// the fixed fallback result.
type Input struct {
	kind       inputKind
	raw        []byte
	normalized model.NormalizedAssessment
}

// RawPayload wraps a raw provider payload for generation.
func RawPayload(raw []byte) Input {
	return Input{kind: inputRaw, raw: raw}
}

// Normalized wraps an already-canonicalized assessment for generation.
func Normalized(m model.NormalizedAssessment) Input {
	return Input{kind: inputNormalized, normalized: m}
}

// Service generates feedback results. Generation is synchronous and pure;
// a single Service is safe for concurrent use.
type Service struct {
	engine   *rules.Engine
	composer *template.Composer
	tone     model.Tone
	logger   logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTone sets the wording tone for composed feedback.
func WithTone(tone model.Tone) Option {
	return func(s *Service) {
		s.tone = tone
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		engine:   rules.NewEngine(),
		composer: template.NewComposer(),
		tone:     model.ToneEmotive,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a GeneratedFeedback for the given input. It never
// returns an error: unrecognized inputs degrade to a fixed fallback result
// and malformed payloads degrade through the canonicalizer's defaults.
func (s *Service) Generate(ctx context.Context, in Input) model.GeneratedFeedback {
	start := time.Now()
	requestID := uuid.New().String()

	var assessment model.NormalizedAssessment
	switch in.kind {
	case inputRaw:
		if len(in.raw) > 0 && !json.Valid(in.raw) {
			metrics.RecordCanonicalizeFallback()
		}
		assessment = canon.Canonicalize(in.raw)
	case inputNormalized:
		assessment = in.normalized
	default:
		metrics.RecordUnrecognizedInput()
		out := model.GeneratedFeedback{
			FinalScore:   fallbackScore,
			Accuracy:     fallbackScore,
			Fluency:      fallbackScore,
			Completeness: fallbackScore,
			Tier:         model.TierForScore(fallbackScore),
			FeedbackText: fallbackText,
		}
		s.logGenerated(ctx, requestID, out, 0)
		return out
	}

	// Rules run on the unrounded model; rounding only shapes the output.
	issues := s.engine.Evaluate(assessment)
	text := s.composer.Compose(assessment, issues, s.tone)

	out := model.GeneratedFeedback{
		FinalScore:   roundScore(assessment.FinalScore),
		Accuracy:     roundScore(assessment.Accuracy),
		Fluency:      roundScore(assessment.Fluency),
		Completeness: roundScore(assessment.Completeness),
		FeedbackText: text,
	}
	out.Tier = model.TierForScore(out.FinalScore)

	metrics.RecordFeedbackGenerated(string(out.Tier))
	for _, issue := range issues {
		metrics.RecordIssueEmitted(string(issue.Category))
	}
	metrics.ObserveFinalScore(float64(out.FinalScore))
	metrics.RecordGenerationLatency(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)

	s.logGenerated(ctx, requestID, out, len(issues))
	return out
}

func (s *Service) logGenerated(ctx context.Context, requestID string, out model.GeneratedFeedback, issueCount int) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(ctx, "feedback generated",
		logger.String("request_id", requestID),
		logger.Int("final_score", out.FinalScore),
		logger.String("tier", string(out.Tier)),
		logger.Int("issues", issueCount),
	)
}

// roundScore rounds half away from zero and clamps to the 0-100 range the
// presentation schema expects.
func roundScore(v float64) int {
	n := int(math.Floor(v + 0.5))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
