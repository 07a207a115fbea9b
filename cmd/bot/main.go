package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	discordrouter "github.com/jose-valero/spectre-divide-bot/internal/adapters/discord"
	"github.com/jose-valero/spectre-divide-bot/internal/adapters/httpops"
	"github.com/jose-valero/spectre-divide-bot/internal/adapters/wavescan"
	"github.com/jose-valero/spectre-divide-bot/internal/app/service"
	"github.com/jose-valero/spectre-divide-bot/internal/infra/config"
	"github.com/jose-valero/spectre-divide-bot/internal/infra/metrics"
	"github.com/jose-valero/spectre-divide-bot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// DB opcional: sin DATABASE_URL no hay historial
	var lookups service.LookupRepo
	if cfg.DatabaseURL != "" {
		db, err := storage.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := storage.Migrate(ctx, db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		lookups = storage.NewLookupRepo(db)
		log.Info("✅ DB lista y migrada")
	} else {
		log.Warn("DATABASE_URL vacío: historial de lookups deshabilitado")
	}

	rec := metrics.NewRecorder()
	api := wavescan.New(wavescan.WithBaseURL(cfg.WavescanBaseURL))
	matchInfo := service.NewMatchInfoService(api, cfg.MapImages, lookups, rec)

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	r := discordrouter.NewRouter(s, cfg.DiscordGuild, matchInfo, cfg.RequestTimeout)
	r.Handlers()

	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Infof("✅ Conectado como %s (%s)", s.State.User.Username, s.State.User.ID)

	if err := r.Register(); err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	if cfg.DiscordGuild != "" {
		log.Infof("✅ comandos registrados en guild %s", cfg.DiscordGuild)
	} else {
		log.Info("✅ comandos registrados globalmente")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpops.New(rec.Handler()).Start(gctx, cfg.HTTPAddr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("ops server")
	}
}

func setupLogging(cfg config.Config) {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("LOG_LEVEL %q inválido, usando info", cfg.LogLevel)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	if strings.EqualFold(cfg.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
