package service

import (
	"context"

	"github.com/alexanderramin/stempel/internal/domain"
	"github.com/alexanderramin/stempel/internal/repository"
)

type configService struct {
	config repository.ConfigRepo
}

func NewConfigService(config repository.ConfigRepo) ConfigService {
	return &configService{config: config}
}

func (s *configService) Get(ctx context.Context, key string) (string, error) {
	return s.config.Get(ctx, key)
}

func (s *configService) Set(ctx context.Context, key, value string) error {
	return s.config.Set(ctx, key, value)
}

func (s *configService) Delete(ctx context.Context, key string) error {
	return s.config.Delete(ctx, key)
}

func (s *configService) List(ctx context.Context) ([]domain.ConfigEntry, error) {
	return s.config.List(ctx)
}
