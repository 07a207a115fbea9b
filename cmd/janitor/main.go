package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"github.com/jose-valero/spectre-divide-bot/internal/infra/storage"
)

const defaultRetentionDays = 30

type pruner interface {
	Prune(ctx context.Context, before time.Time, outcomes []string) (int64, error)
}

func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	days, err := retentionDays(os.Getenv("LOOKUP_RETENTION_DAYS"))
	if err != nil {
		return err.Error(), nil
	}
	outcomes, err := parseOutcomes(os.Getenv("PRUNE_OUTCOMES"))
	if err != nil {
		return err.Error(), nil
	}

	db, err := storage.Open(ctx, dsn)
	if err != nil {
		return fmt.Sprintf("open: %v", err), nil
	}
	defer db.Close()

	return prune(ctx, storage.NewLookupRepo(db), time.Now(), days, outcomes), nil
}

func prune(ctx context.Context, repo pruner, now time.Time, days int, outcomes []string) string {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	before := now.AddDate(0, 0, -days)
	n, err := repo.Prune(cctx, before, outcomes)
	if err != nil {
		log.WithError(err).Error("janitor: prune failed")
		return fmt.Sprintf("prune: %v", err)
	}
	log.WithFields(log.Fields{"deleted": n, "before": before.Format(time.RFC3339), "outcomes": outcomes}).Info("janitor: pruned lookups")
	return "ok"
}

func retentionDays(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultRetentionDays, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("LOOKUP_RETENTION_DAYS: invalid value %q", raw)
	}
	return n, nil
}

// parseOutcomes: lista separada por comas; vacío = todos.
func parseOutcomes(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return storage.AllOutcomes, nil
	}
	valid := make(map[string]bool, len(storage.AllOutcomes))
	for _, o := range storage.AllOutcomes {
		valid[o] = true
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.ToLower(strings.TrimSpace(o))
		if o == "" {
			continue
		}
		if !valid[o] {
			return nil, fmt.Errorf("PRUNE_OUTCOMES: unknown outcome %q", o)
		}
		out = append(out, o)
	}
	if len(out) == 0 {
		return storage.AllOutcomes, nil
	}
	return out, nil
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	lambda.Start(handler)
}
