package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jose-valero/spectre-divide-bot/internal/domain"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // vacío = comandos globales

	WavescanBaseURL string
	RequestTimeout  time.Duration
	MapImages       domain.MapImageIndex

	DatabaseURL string // opcional: sin DB no hay historial
	HTTPAddr    string // opcional, default :8080

	LogLevel  string
	LogFormat string // text | json

	LookupRetentionDays int
}

const (
	defaultWavescanBase   = "https://wavescan-production.up.railway.app"
	defaultRequestTimeout = 12 * time.Second
	defaultHTTPAddr       = ":8080"
	defaultRetentionDays  = 30
)

// Load lee el entorno (el .env lo carga main con godotenv).
func Load() (Config, error) {
	var missing []string
	get := func(k string, req bool) string {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" && req {
			missing = append(missing, k)
		}
		return v
	}

	cfg := Config{
		DiscordToken:    get("DISCORD_BOT_TOKEN", true),
		DiscordGuild:    get("DISCORD_GUILD_ID", false),
		WavescanBaseURL: get("WAVESCAN_BASE_URL", false),
		DatabaseURL:     get("DATABASE_URL", false),
		HTTPAddr:        get("HTTP_ADDR", false),
		LogLevel:        get("LOG_LEVEL", false),
		LogFormat:       get("LOG_FORMAT", false),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing env %s", strings.Join(missing, ", "))
	}

	if cfg.WavescanBaseURL == "" {
		cfg.WavescanBaseURL = defaultWavescanBase
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if raw := get("REQUEST_TIMEOUT", false); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("REQUEST_TIMEOUT: invalid duration %q", raw)
		}
		cfg.RequestTimeout = d
	}

	cfg.LookupRetentionDays = defaultRetentionDays
	if raw := get("LOOKUP_RETENTION_DAYS", false); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("LOOKUP_RETENTION_DAYS: invalid value %q", raw)
		}
		cfg.LookupRetentionDays = n
	}

	maps, err := ParseMapImages(get("MAP_IMAGES", false), domain.DefaultMapImages())
	if err != nil {
		return Config{}, err
	}
	cfg.MapImages = maps

	return cfg, nil
}

// ParseMapImages aplica overrides "Nombre=url,Nombre=url" sobre base (sin mutarla).
// Los nombres se normalizan, así que "Metro_P=..." pisa "Metro".
func ParseMapImages(raw string, base domain.MapImageIndex) (domain.MapImageIndex, error) {
	out := make(domain.MapImageIndex, len(base))
	for k, v := range base {
		out[k] = v
	}
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, url, ok := strings.Cut(pair, "=")
		name, url = strings.TrimSpace(name), strings.TrimSpace(url)
		if !ok || name == "" || url == "" {
			return nil, fmt.Errorf("MAP_IMAGES: invalid entry %q", pair)
		}
		out[domain.NormalizeMapName(name)] = url
	}
	return out, nil
}
