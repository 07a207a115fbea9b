package discord

import "github.com/bwmarrin/discordgo"

// responder es lo que usamos de *discordgo.Session para contestar interacciones.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// commandHandler atiende un slash command ya despachado.
type commandHandler func(resp responder, ic *discordgo.InteractionCreate)
