package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jose-valero/spectre-divide-bot/internal/adapters/wavescan"
	"github.com/jose-valero/spectre-divide-bot/internal/domain"
	"github.com/jose-valero/spectre-divide-bot/internal/infra/metrics"
	"github.com/jose-valero/spectre-divide-bot/internal/infra/storage"
)

func FailedMessage(matchID string) string {
	return fmt.Sprintf("🚧 Failed to fetch match details for match %s. 🚧", matchID)
}

func InvalidMessage(matchID string) string {
	return fmt.Sprintf("🚧 Invalid match data or team structure for match %s. 🚧", matchID)
}

func ErrorMessage(matchID string) string {
	return fmt.Sprintf("🚧 There was an error fetching the match details for match %s. 🚧", matchID)
}

// Result: o hay Card (OutcomeOK) o hay Message para el usuario.
type Result struct {
	Outcome string
	Card    *domain.MatchCard
	Message string
}

type MatchInfoService struct {
	api     MatchAPI
	maps    domain.MapImageIndex
	lookups LookupRepo // nil = sin historial
	metrics *metrics.Recorder
}

func NewMatchInfoService(api MatchAPI, maps domain.MapImageIndex, lookups LookupRepo, rec *metrics.Recorder) *MatchInfoService {
	if maps == nil {
		maps = domain.DefaultMapImages()
	}
	return &MatchInfoService{api: api, maps: maps, lookups: lookups, metrics: rec}
}

// Lookup trae el match y lo clasifica. Los fallos "esperados" (success=false,
// estructura inválida) van en Result; red/decode vuelven como error.
func (s *MatchInfoService) Lookup(ctx context.Context, matchID string) (Result, error) {
	start := time.Now()
	resp, err := s.api.GetMatchCheck(ctx, matchID)
	s.metrics.RecordUpstream(time.Since(start), err)
	if err != nil {
		return Result{Outcome: storage.OutcomeError}, fmt.Errorf("match %s: %w", matchID, err)
	}

	if resp == nil {
		return Result{Outcome: storage.OutcomeInvalid, Message: InvalidMessage(matchID)}, nil
	}
	if !resp.Success {
		return Result{Outcome: storage.OutcomeFailed, Message: FailedMessage(matchID)}, nil
	}

	gsr := resp.GameServiceResponse
	if gsr == nil || gsr.SpectreMatch == nil || len(gsr.SpectreMatchTeam) < 2 {
		return Result{Outcome: storage.OutcomeInvalid, Message: InvalidMessage(matchID)}, nil
	}

	card := s.buildCard(matchID, gsr.SpectreMatch, gsr.SpectreMatchTeam[:2])
	return Result{Outcome: storage.OutcomeOK, Card: card}, nil
}

func (s *MatchInfoService) buildCard(matchID string, m *wavescan.SpectreMatch, teams []wavescan.SpectreTeam) *domain.MatchCard {
	card := &domain.MatchCard{
		MatchID:  matchID,
		GameMode: orDefault(m.QueueGameMode, domain.DefaultGameMode),
		MapName:  orDefault(m.QueueGameMap, domain.DefaultMapName),
		Region:   orDefault(m.Region, domain.DefaultRegion),
	}
	for i, t := range teams {
		card.Teams[i] = rosterFrom(t.Players)
	}
	card.MapImageURL = s.maps.ImageFor(card.MapName)
	return card
}

func rosterFrom(players []wavescan.SpectrePlayer) domain.TeamRoster {
	roster := make(domain.TeamRoster, 0, len(players))
	for _, p := range players {
		roster = append(roster, domain.NewPlayerStat(p.SavedPlayerName, intOrZero(p.NumKills), intOrZero(p.NumDeaths)))
	}
	return roster
}

// RecordLookup guarda la invocación en el historial (si hay DB) y en métricas.
// Nunca falla hacia afuera: un error de storage sólo se loguea.
func (s *MatchInfoService) RecordLookup(ctx context.Context, l storage.Lookup) {
	s.metrics.RecordLookup(l.Outcome, time.Duration(l.DurationMS)*time.Millisecond)
	if s.lookups == nil {
		return
	}
	if err := s.lookups.Insert(ctx, l); err != nil {
		log.WithFields(log.Fields{
			"match_id": l.MatchID,
			"outcome":  l.Outcome,
		}).WithError(err).Warn("could not record lookup")
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
