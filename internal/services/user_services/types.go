package user_services

// Logger interface for all user services
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

const (
	msgInvalidCredentials = "Email ou senha inválidos."
	msgEmailTaken         = "Este email já está cadastrado."
	msgInternal           = "Erro interno no servidor."

	webhookEmailDomain = "webhook.gestorai.local"
)
