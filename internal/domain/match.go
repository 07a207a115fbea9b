package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultGameMode   = "Unknown Game Mode"
	DefaultMapName    = "Unknown Map"
	DefaultRegion     = "Unknown Region"
	DefaultPlayerName = "Unknown Player"

	NoStats   = "Stats not available"
	Infinite  = "∞"
	NoPlayers = "No players found"
)

// PlayerStat es una fila de roster ya calculada, sólo para mostrar.
type PlayerStat struct {
	Name   string
	Kills  int
	Deaths int
	KD     string
}

// TeamRoster respeta el orden en que vienen los jugadores del upstream.
type TeamRoster []PlayerStat

// MatchCard es lo que termina en el embed.
type MatchCard struct {
	MatchID     string
	GameMode    string
	MapName     string
	Region      string
	Teams       [2]TeamRoster
	MapImageURL string // vacío si el mapa no está en el índice
}

// NewPlayerStat aplica los defaults (nil/negativo -> 0) y calcula el K/D.
func NewPlayerStat(name string, kills, deaths int) PlayerStat {
	if kills < 0 {
		kills = 0
	}
	if deaths < 0 {
		deaths = 0
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultPlayerName
	}
	return PlayerStat{Name: name, Kills: kills, Deaths: deaths, KD: KDRatio(kills, deaths)}
}

// KDRatio: 0/0 "Stats not available", n/0 "∞", 0/n "0.00", resto con 2 decimales.
func KDRatio(kills, deaths int) string {
	switch {
	case kills == 0 && deaths == 0:
		return NoStats
	case deaths == 0:
		return Infinite
	case kills == 0:
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(kills)/float64(deaths))
}

// Text arma el bloque del roster tal como se muestra en el campo del embed.
func (t TeamRoster) Text() string {
	if len(t) == 0 {
		return NoPlayers
	}
	blocks := make([]string, 0, len(t))
	for _, p := range t {
		blocks = append(blocks, fmt.Sprintf("> %s\n↳ K/D: %s", p.Name, p.KD))
	}
	return strings.Join(blocks, "\n\n")
}
