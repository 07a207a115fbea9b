package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// deferredReply es el ack "pensando..." de una interacción. Se resuelve una
// sola vez: la primera llamada a Content/Embed gana, las demás son no-op.
type deferredReply struct {
	r      responder
	ic     *discordgo.Interaction
	ackErr error

	mu       sync.Mutex
	resolved bool
}

// deferReply manda el ack público (no efímero) apenas llega la interacción.
func deferReply(r responder, ic *discordgo.Interaction) *deferredReply {
	err := r.InteractionRespond(ic, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.WithError(err).Warn("deferReply: ack failed")
	}
	return &deferredReply{r: r, ic: ic, ackErr: err}
}

func (d *deferredReply) Content(msg string) bool {
	return d.resolve(msg, nil)
}

func (d *deferredReply) Embed(e *discordgo.MessageEmbed) bool {
	return d.resolve("", []*discordgo.MessageEmbed{e})
}

func (d *deferredReply) Resolved() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resolved
}

func (d *deferredReply) resolve(content string, embeds []*discordgo.MessageEmbed) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resolved {
		return false
	}
	d.resolved = true

	// Sin ack no hay respuesta original que editar: contestamos directo.
	if d.ackErr != nil {
		err := d.r.InteractionRespond(d.ic, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: content, Embeds: embeds},
		})
		if err != nil {
			log.WithError(err).Error("deferredReply: respond failed")
		}
		return true
	}

	edit := &discordgo.WebhookEdit{}
	if content != "" {
		edit.Content = &content
	}
	if len(embeds) > 0 {
		edit.Embeds = &embeds
	}
	if _, err := d.r.InteractionResponseEdit(d.ic, edit); err != nil {
		log.WithError(err).Warn("deferredReply: edit failed, sending followup")
		_, ferr := d.r.FollowupMessageCreate(d.ic, true, &discordgo.WebhookParams{
			Content: content,
			Embeds:  embeds,
		})
		if ferr != nil {
			log.WithError(ferr).Error("deferredReply: followup failed")
		}
	}
	return true
}
