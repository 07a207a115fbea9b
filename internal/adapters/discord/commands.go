package discord

import "github.com/bwmarrin/discordgo"

const (
	cmdMatchInfo = "matchinfo"
	optMatchID   = "matchid"
)

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        cmdMatchInfo,
		Description: "Fetch the match details and team lineup.",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        optMatchID,
			Description: "The ID of the match",
			Required:    true,
		}},
	},
}
