package main

import (
	"log"

	"resume-analyzer/internal/analysis"
	"resume-analyzer/internal/llm/openai"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/server"
)

func main() {
	cfg := config.Load()

	if cfg.LLMProvider != "openai" {
		log.Fatalf("unsupported LLM_PROVIDER: %s", cfg.LLMProvider)
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("llm configuration: %v", err)
	}

	lexicon, err := analysis.LoadLexicon(cfg.LexiconFile)
	if err != nil {
		log.Fatalf("lexicon: %v", err)
	}

	svc := analysis.NewService(client, lexicon)
	r := server.NewRouter(cfg, analysis.NewHandler(svc))

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
