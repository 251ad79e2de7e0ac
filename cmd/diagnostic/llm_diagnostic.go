// File: cmd/diagnostic/llm_diagnostic.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/services/ai"
	"github.com/gestorai/gestorai/internal/services/chat"
)

// Sends one prompt through the configured completion provider, using the same
// system prompt as the chat service.
func main() {
	prompt := flag.String("prompt", "Liste três dicas para organizar minhas tarefas da semana.", "user message to send")
	model := flag.String("model", "", "model name (defaults to CHAT_MODEL)")
	envFile := flag.String("env", ".env", "optional .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("Warning: could not load %s: %v", *envFile, err)
	}

	cfg := ai.DefaultConfig()
	cfg.APIKey = os.Getenv("LLM_API_KEY")
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if cfg.APIKey == "" {
		log.Fatal("LLM_API_KEY not set in environment")
	}

	if *model == "" {
		*model = os.Getenv("CHAT_MODEL")
	}
	if *model == "" {
		*model = chat.DefaultModel
	}

	provider, err := ai.NewOpenAIProvider(cfg)
	if err != nil {
		log.Fatalf("provider setup failed: %v", err)
	}

	fmt.Printf("Endpoint: %s\nModel:    %s\n\n", cfg.BaseURL, *model)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	started := time.Now()
	reply, err := provider.Complete(ctx, *model, chat.BuildPrompt(chat.DefaultSystemPrompt, []domain.ChatMessage{
		{Sender: domain.SenderUser, Text: *prompt},
	}))
	if err != nil {
		log.Fatalf("completion failed after %s: %v", time.Since(started).Round(time.Millisecond), err)
	}
	if reply == "" {
		fmt.Println("(empty reply)")
	}
	fmt.Printf("%s\n\nTook %s\n", reply, time.Since(started).Round(time.Millisecond))
}
