// Command analyze runs the full pipeline on a local file and prints the
// plain-text report to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resume-analyzer/internal/analysis"
	"resume-analyzer/internal/llm/openai"
	"resume-analyzer/internal/shared/config"
)

func main() {
	filePath := flag.String("file", "", "path to the resume file (pdf, docx, or txt)")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: analyze -file <resume.pdf|resume.docx|resume.txt>")
	}

	cfg := config.Load()
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("llm configuration: %v", err)
	}
	lexicon, err := analysis.LoadLexicon(cfg.LexiconFile)
	if err != nil {
		log.Fatalf("lexicon: %v", err)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read file: %v", err)
	}

	svc := analysis.NewService(client, lexicon)
	result, err := svc.Analyze(context.Background(), filepath.Base(*filePath), data)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	fmt.Println(analysis.RenderViews(result).PlainTextReport)
}
