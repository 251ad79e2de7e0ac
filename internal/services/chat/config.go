package chat

import "fmt"

// DefaultSystemPrompt is the GestorAI persona sent ahead of every history window.
const DefaultSystemPrompt = `Você é o GestorAI, um assistente virtual de produtividade. Sua função principal é ajudar o usuário a organizar tarefas e responder dúvidas.

Se o usuário pedir para 'criar uma tarefa', você DEVE pedir os detalhes da tarefa (qual o título ou o que precisa ser feito) para que a tarefa possa ser criada através da sua interface.

Exemplo de resposta ao pedido de tarefa: 'Com certeza! Para eu criar a tarefa, qual o título ou o que você precisa que seja feito?'

Responda sempre de forma prestativa, concisa e focada na produtividade.`

const (
	DefaultModel         = "openai/gpt-oss-20b"
	DefaultFallbackReply = "Não consegui gerar uma resposta."
	DefaultSummary       = "Nova conversa"
	MaxSummaryLength     = 200
)

type Config struct {
	Model        string
	SystemPrompt string
	// ContextWindow caps how many stored messages are replayed; 0 replays all.
	ContextWindow int
	FallbackReply string
	PageSize      int
}

func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("chat model is required")
	}
	if c.ContextWindow < 0 {
		return fmt.Errorf("context window cannot be negative")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive")
	}
	return nil
}

// withDefaults fills empty prompt text so a blank env var never sends an empty system turn.
func (c Config) withDefaults() Config {
	if c.SystemPrompt == "" {
		c.SystemPrompt = DefaultSystemPrompt
	}
	if c.FallbackReply == "" {
		c.FallbackReply = DefaultFallbackReply
	}
	return c
}

func DefaultConfig() *Config {
	return &Config{
		Model:         DefaultModel,
		SystemPrompt:  DefaultSystemPrompt,
		ContextWindow: 10,
		FallbackReply: DefaultFallbackReply,
		PageSize:      10,
	}
}
