package discord

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/spectre-divide-bot/internal/domain"
)

func TestMatchEmbed(t *testing.T) {
	now := time.Date(2024, 8, 1, 12, 30, 0, 0, time.UTC)
	card := &domain.MatchCard{
		MatchID:  "abc",
		GameMode: "Ranked",
		MapName:  "Commons_P",
		Region:   "NA",
		Teams: [2]domain.TeamRoster{
			{domain.NewPlayerStat("ace", 3, 0)},
			nil,
		},
		MapImageURL: "https://example.com/commons.png",
	}

	e := matchEmbed(card, now)

	assert.Equal(t, "Match Info for Match ID: abc", e.Title)
	assert.Equal(t, ColorMatchInfo, e.Color)
	assert.Equal(t, "2024-08-01T12:30:00Z", e.Timestamp)
	require.NotNil(t, e.Footer)
	assert.Equal(t, "Spectre Divide Bot", e.Footer.Text)
	assert.Equal(t, "https://i.imgur.com/wSTFkRM.png", e.Footer.IconURL)
	require.NotNil(t, e.Image)
	assert.Equal(t, "https://example.com/commons.png", e.Image.URL)

	require.Len(t, e.Fields, 4)
	assert.Equal(t, "Game Mode", e.Fields[0].Name)
	assert.Equal(t, "Ranked", e.Fields[0].Value)
	assert.False(t, e.Fields[0].Inline)
	assert.Equal(t, "Region", e.Fields[1].Name)
	assert.Equal(t, "NA", e.Fields[1].Value)
	assert.False(t, e.Fields[1].Inline)
	assert.Equal(t, "> ace\n↳ K/D: ∞", e.Fields[2].Value)
	assert.True(t, e.Fields[2].Inline)
	assert.Equal(t, "No players found", e.Fields[3].Value)
	assert.True(t, e.Fields[3].Inline)
}

func TestMatchEmbedWithoutImage(t *testing.T) {
	e := matchEmbed(&domain.MatchCard{MatchID: "x", MapName: "Unknown Map"}, time.Now())
	assert.Nil(t, e.Image)
}

func TestClip(t *testing.T) {
	short := "> ace\n↳ K/D: 1.00"
	assert.Equal(t, short, clip(short))

	long := strings.Repeat("ñ", maxFieldValue+10)
	got := clip(long)
	assert.Equal(t, maxFieldValue, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}
