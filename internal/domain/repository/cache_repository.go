package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу. nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetInterpretation получает интерпретацию по хешу промпта
	GetInterpretation(ctx context.Context, promptHash string) (string, bool, error)

	// SetInterpretation сохраняет интерпретацию по хешу промпта
	SetInterpretation(ctx context.Context, promptHash, text string, ttl time.Duration) error
}
