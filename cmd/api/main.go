package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soltrader/internal/api"
	"soltrader/internal/codegen"
	"soltrader/internal/config"
	llmclient "soltrader/internal/llm/client"
	llmmw "soltrader/internal/llm/middleware"
	"soltrader/internal/prompteval"
	"soltrader/internal/refdocs"
	"soltrader/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	base, err := llmclient.New(ctx, cfg.LLM.Provider, cfg.LLM.Model)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	defer base.Close()

	gen := llmmw.Chain(base,
		llmmw.WithLogging(nil),
		llmmw.WithRateLimit(cfg.LLM.RatePerSecond, cfg.LLM.Burst),
	)

	assembler, err := codegen.NewPromptAssembler(refdocs.CoderPrompt, codegen.DefaultReferenceDocs())
	if err != nil {
		log.Fatalf("Failed to assemble coder prompt: %v", err)
	}
	guardrail, err := codegen.NewGuardrail(gen, nil)
	if err != nil {
		log.Fatalf("Failed to assemble guardrail prompt: %v", err)
	}
	coder := codegen.NewCoder(gen, assembler, codegen.NewStaticChecker(), guardrail, cfg.LLM.GenerationTimeout, nil)

	evaluator, err := prompteval.NewEvaluator(gen, nil)
	if err != nil {
		log.Fatalf("Failed to initialize evaluator: %v", err)
	}

	handler := api.NewHandler(coder, evaluator, nil)
	srv := server.New(cfg.Port, api.NewMux(handler))

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
