package testpayloads

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sorilab/sori/internal/app"
	"github.com/sorilab/sori/internal/domain/model"
	"github.com/sorilab/sori/pkg/logger"
)

// File permission for payload dumps.
const outputFilePermission = 0o600

// Run generates payloads, feeds them through the feedback service, and
// verifies the output invariants. It returns an error when any generated
// result violates them.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get()
	stats := NewStats()

	tone, err := model.ParseTone(cfg.Tone)
	if err != nil {
		return fmt.Errorf("invalid tone: %w", err)
	}

	log.Info(ctx, "generating payloads", logger.Int("count", cfg.NumPayloads))
	payloads, err := generatePayloads(cfg)
	if err != nil {
		return err
	}
	stats.Generated = len(payloads)

	if cfg.OutputFile != "" {
		if err := dumpPayloads(cfg.OutputFile, payloads); err != nil {
			return err
		}
		log.Info(ctx, "payloads written", logger.String("file", cfg.OutputFile))
	}

	svc := app.New(app.WithTone(tone), app.WithLogger(log.Named("testpayloads")))

	for _, p := range payloads {
		select {
		case <-ctx.Done():
			return fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		out := svc.Generate(ctx, app.RawPayload(p.Raw))
		issues := verifyPayload(p, out)
		stats.CasingCounts[p.Casing]++

		if len(issues) > 0 {
			stats.Failed++
			log.Error(ctx, "invariant violation",
				logger.String("payload_id", p.ID),
				logger.Any("violations", issues),
			)
			continue
		}

		stats.Verified++
		stats.TierCounts[string(out.Tier)]++
		stats.ScoreSum += out.FinalScore
		if cfg.Verbose {
			log.Info(ctx, "payload verified",
				logger.String("payload_id", p.ID),
				logger.String("casing", p.Casing),
				logger.Int("final_score", out.FinalScore),
				logger.String("tier", string(out.Tier)),
			)
		}
	}

	reportStats(ctx, log, stats)
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d payloads violated output invariants", stats.Failed, stats.Generated)
	}
	return nil
}

func dumpPayloads(path string, payloads []Payload) error {
	data, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payloads: %w", err)
	}
	if err := os.WriteFile(path, data, outputFilePermission); err != nil {
		return fmt.Errorf("failed to write payloads: %w", err)
	}
	return nil
}

func reportStats(ctx context.Context, log logger.Logger, stats *Stats) {
	avg := 0
	if stats.Verified > 0 {
		avg = stats.ScoreSum / stats.Verified
	}
	log.Info(ctx, "run complete",
		logger.Int("generated", stats.Generated),
		logger.Int("verified", stats.Verified),
		logger.Int("failed", stats.Failed),
		logger.Int("avg_final_score", avg),
		logger.Any("tiers", stats.TierCounts),
		logger.Any("casings", stats.CasingCounts),
	)
}
