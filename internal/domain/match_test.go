package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKDRatio(t *testing.T) {
	tests := []struct {
		name     string
		kills    int
		deaths   int
		expected string
	}{
		{"no stats", 0, 0, "Stats not available"},
		{"kills without deaths", 7, 0, "∞"},
		{"deaths without kills", 0, 3, "0.00"},
		{"regular ratio", 10, 4, "2.50"},
		{"repeating decimal", 1, 3, "0.33"},
		{"rounds up", 2, 3, "0.67"},
		{"whole number", 9, 3, "3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KDRatio(tt.kills, tt.deaths))
		})
	}
}

func TestNewPlayerStat(t *testing.T) {
	p := NewPlayerStat("ace", 10, 4)
	assert.Equal(t, PlayerStat{Name: "ace", Kills: 10, Deaths: 4, KD: "2.50"}, p)

	p = NewPlayerStat("", -2, -1)
	assert.Equal(t, DefaultPlayerName, p.Name)
	assert.Equal(t, 0, p.Kills)
	assert.Equal(t, 0, p.Deaths)
	assert.Equal(t, NoStats, p.KD)
}

func TestTeamRosterText(t *testing.T) {
	assert.Equal(t, "No players found", TeamRoster{}.Text())
	assert.Equal(t, "No players found", TeamRoster(nil).Text())

	roster := TeamRoster{
		NewPlayerStat("ace", 10, 4),
		NewPlayerStat("rookie", 0, 0),
	}
	assert.Equal(t, "> ace\n↳ K/D: 2.50\n\n> rookie\n↳ K/D: Stats not available", roster.Text())
}

func TestMapImages(t *testing.T) {
	maps := DefaultMapImages()

	assert.Equal(t, "Metro", NormalizeMapName("Metro_P"))
	assert.Equal(t, "Metro", NormalizeMapName("Metro"))
	assert.Equal(t, "Metro_P", NormalizeMapName("Metro_P_P"))

	assert.Equal(t, maps["Metro"], maps.ImageFor("Metro_P"))
	assert.Equal(t, maps["Metro"], maps.ImageFor("Metro"))
	assert.Equal(t, maps["Commons"], maps.ImageFor("Commons"))
	assert.Empty(t, maps.ImageFor("Skyway_P"))
	assert.Empty(t, MapImageIndex(nil).ImageFor("Metro"))
}
