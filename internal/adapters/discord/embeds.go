package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/spectre-divide-bot/internal/domain"
)

const (
	ColorMatchInfo = 0x0099ff

	footerText = "Spectre Divide Bot"
	footerIcon = "https://i.imgur.com/wSTFkRM.png"

	// límite de Discord para el value de un field
	maxFieldValue = 1024
)

// matchEmbed arma la tarjeta de /matchinfo.
func matchEmbed(card *domain.MatchCard, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Match Info for Match ID: %s", card.MatchID),
		Color: ColorMatchInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Game Mode", Value: clip(card.GameMode), Inline: false},
			{Name: "Region", Value: clip(card.Region), Inline: false},
			{Name: "Team 1", Value: clip(card.Teams[0].Text()), Inline: true},
			{Name: "Team 2", Value: clip(card.Teams[1].Text()), Inline: true},
		},
		Timestamp: now.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text:    footerText,
			IconURL: footerIcon,
		},
	}
	if card.MapImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: card.MapImageURL}
	}
	return embed
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= maxFieldValue {
		return s
	}
	return string(r[:maxFieldValue-1]) + "…"
}
