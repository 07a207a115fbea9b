package discord

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jose-valero/spectre-divide-bot/internal/app/service"
	"github.com/jose-valero/spectre-divide-bot/internal/infra/storage"
)

const (
	defaultTimeout = 12 * time.Second
	recordTimeout  = 3 * time.Second
)

type Router struct {
	s       *discordgo.Session
	guildID string

	matchInfo *service.MatchInfoService
	timeout   time.Duration
	now       func() time.Time

	commands map[string]commandHandler
}

func NewRouter(s *discordgo.Session, guildID string, matchInfo *service.MatchInfoService, timeout time.Duration) *Router {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	r := &Router{
		s:         s,
		guildID:   guildID,
		matchInfo: matchInfo,
		timeout:   timeout,
		now:       time.Now,
	}
	r.commands = map[string]commandHandler{
		cmdMatchInfo: r.handleMatchInfo,
	}
	return r
}

// Register crea los comandos en el guild configurado (o globales si está vacío).
func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		r.dispatch(s, ic)
	})
}

func (r *Router) dispatch(resp responder, ic *discordgo.InteractionCreate) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := ic.ApplicationCommandData()
	h, ok := r.commands[data.Name]
	if !ok {
		log.WithField("command", data.Name).Debug("ignoring unknown command")
		return
	}
	log.Debugf("slash: /%s by=%s guild=%s", data.Name, userID(ic), ic.GuildID)
	h(resp, ic)
}

// handleMatchInfo: ack diferido, lookup, y exactamente una resolución del ack
// en todos los caminos (card, mensaje de validación o error/panic).
func (r *Router) handleMatchInfo(resp responder, ic *discordgo.InteractionCreate) {
	defer step("matchinfo.total")()

	matchID, _ := optStr(ic, optMatchID)
	matchID = strings.TrimSpace(matchID)

	invocationID := uuid.New()
	logger := log.WithFields(log.Fields{
		"invocation_id": invocationID.String(),
		"match_id":      matchID,
		"guild_id":      ic.GuildID,
		"user_id":       userID(ic),
	})
	start := time.Now()
	reply := deferReply(resp, ic.Interaction)

	outcome := storage.OutcomeError
	defer func() {
		if rec := recover(); rec != nil {
			logger.WithField("panic", rec).Error("panic in /matchinfo")
			outcome = storage.OutcomeError
		}
		if !reply.Resolved() {
			reply.Content(service.ErrorMessage(matchID))
		}

		elapsed := time.Since(start)
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		r.matchInfo.RecordLookup(ctx, storage.Lookup{
			ID:         invocationID,
			MatchID:    matchID,
			GuildID:    ic.GuildID,
			UserID:     userID(ic),
			Outcome:    outcome,
			DurationMS: elapsed.Milliseconds(),
		})
		logger.WithFields(log.Fields{"outcome": outcome, "duration": elapsed}).Info("matchinfo done")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	stop := step("matchinfo.lookup")
	res, err := r.matchInfo.Lookup(ctx, matchID)
	stop()
	outcome = res.Outcome

	if err != nil {
		logger.WithError(err).Error("failed to fetch match details")
		reply.Content(service.ErrorMessage(matchID))
		return
	}
	if res.Card == nil {
		logger.WithField("outcome", res.Outcome).Info("match not usable")
		reply.Content(res.Message)
		return
	}
	reply.Embed(matchEmbed(res.Card, r.now()))
}
