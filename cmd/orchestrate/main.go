package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"edusphere"
)

func main() {
	var (
		prompt     = flag.String("prompt", "", "Natural language request (required)")
		stream     = flag.Bool("stream", false, "Print progress events to stderr as they happen")
		outputFile = flag.String("output", "", "Output file for response JSON (default: stdout)")
		timeout    = flag.Duration("timeout", 5*time.Minute, "Overall timeout for the run")
	)

	flag.Parse()

	if *prompt == "" {
		log.Fatal("Prompt is required. Use -prompt flag.")
	}

	cfg := edusphere.LoadConfig()
	logger, err := edusphere.NewLogger(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	backend := edusphere.NewGenerationService(cfg, logger)
	formsService := edusphere.NewFormsService(cfg, logger)
	orch := edusphere.NewOrchestrator(backend, formsService, logger)

	if backend.MockMode() {
		fmt.Fprintln(os.Stderr, "No GEMINI_API_KEY or OPENAI_API_KEY set; running with mock generation.")
	}

	var sink edusphere.ProgressSink
	if *stream {
		sink = func(ev edusphere.ProgressEvent) {
			payload, _ := json.Marshal(ev.Payload)
			fmt.Fprintf(os.Stderr, "[%s] %s\n", ev.Kind, payload)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := orch.Run(ctx, edusphere.OrchestrateRequest{Prompt: *prompt}, sink)
	if err != nil {
		log.Fatalf("Orchestration failed: %v", err)
	}

	output, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal response: %v", err)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, output, 0644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
		log.Printf("Response saved to: %s", *outputFile)
	} else {
		fmt.Println(string(output))
	}
}
