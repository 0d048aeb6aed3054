package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sorilab/sori/internal/testpayloads"
)

// Default configuration constants.
const (
	defaultNumPayloads = 1000
	defaultRunTimeout  = 10 * time.Minute
)

func main() {
	var (
		numPayloads = flag.Int("payloads", defaultNumPayloads, "Number of payloads to generate")
		tone        = flag.String("tone", "emotive", "Feedback tone: emotive, plain, cute, fun")
		outputFile  = flag.String("output", "", "Optional file to dump the generated payloads as JSON")
		logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
		verbose     = flag.Bool("verbose", false, "Log every verified payload")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testpayloads.ShowHelp()
		return
	}

	if err := testpayloads.SetupLogging(*logLevel); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &testpayloads.Config{
		NumPayloads: *numPayloads,
		Tone:        *tone,
		OutputFile:  *outputFile,
		Verbose:     *verbose,
	}

	if err := testpayloads.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
