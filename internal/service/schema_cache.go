package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"prequal-reporting-api/internal/cache"
	"prequal-reporting-api/internal/entity"

	"go.uber.org/zap"
)

type SchemaCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// CachedSchemaService serves schema lookups from the cache and falls back to
// the wrapped service on a miss or a cache failure.
type CachedSchemaService struct {
	Schema
	cache  SchemaCache
	logger *zap.Logger
}

func NewCachedSchemaService(next Schema, c SchemaCache, logger *zap.Logger) *CachedSchemaService {
	return &CachedSchemaService{Schema: next, cache: c, logger: logger}
}

func (s *CachedSchemaService) GetDeduplicatedSchema(ctx context.Context, clientId int64) ([]entity.DeduplicatedQuestion, error) {
	return cached(ctx, s, cache.Key("schema", strconv.FormatInt(clientId, 10)), func() ([]entity.DeduplicatedQuestion, error) {
		return s.Schema.GetDeduplicatedSchema(ctx, clientId)
	})
}

func (s *CachedSchemaService) GetQuestionsWithRiskLevels(ctx context.Context, clientId int64) ([]entity.QuestionWithRiskLevels, error) {
	return cached(ctx, s, cache.Key("questions", strconv.FormatInt(clientId, 10)), func() ([]entity.QuestionWithRiskLevels, error) {
		return s.Schema.GetQuestionsWithRiskLevels(ctx, clientId)
	})
}

func cached[T any](ctx context.Context, s *CachedSchemaService, key string, load func() ([]T, error)) ([]T, error) {
	b, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var v []T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		s.logger.Warn("drop undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, cache.ErrMiss):
		s.logger.Warn("schema cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err := load()
	if err != nil {
		return nil, err
	}

	b, err = json.Marshal(v)
	if err != nil {
		return v, nil
	}
	if err := s.cache.Set(ctx, key, b); err != nil {
		s.logger.Warn("schema cache write failed", zap.String("key", key), zap.Error(err))
	}

	return v, nil
}
