package repository

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	State  StateRepository
	Result ResultRepository
}

func NewRepository(rdb *redis.Client, resultTTL time.Duration, log *zap.Logger) *Repository {
	return &Repository{
		State:  NewStateRepository(rdb, log),
		Result: NewResultRepository(resultTTL),
	}
}
