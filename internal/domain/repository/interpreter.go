package repository

import "context"

// Interpreter - внешний сервис генерации текста по промпту
type Interpreter interface {
	Interpret(ctx context.Context, prompt string) (string, error)
}
