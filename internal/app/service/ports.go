package service

import (
	"context"

	"github.com/jose-valero/spectre-divide-bot/internal/adapters/wavescan"
	"github.com/jose-valero/spectre-divide-bot/internal/infra/storage"
)

// Lo implementa internal/adapters/wavescan.Client
type MatchAPI interface {
	GetMatchCheck(ctx context.Context, matchID string) (*wavescan.MatchCheck, error)
}

// Lo implementa internal/infra/storage.LookupRepo
type LookupRepo interface {
	Insert(ctx context.Context, l storage.Lookup) error
}
