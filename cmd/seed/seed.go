package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/nulzo/agent-models/internal/store"
	"github.com/nulzo/agent-models/internal/store/model"
	"github.com/nulzo/agent-models/internal/store/sqlite"
	"github.com/nulzo/agent-models/pkg/models"
	"go.uber.org/zap"
)

// seed fills the lookup database with synthetic traffic so the /v1/stats
// endpoints have something to show.
func main() {
	dsn := flag.String("dsn", "lookups.db", "SQLite DSN")
	days := flag.Int("days", 7, "Days of history to generate")
	perDay := flag.Int("per-day", 200, "Lookups per day")
	flag.Parse()

	repo, err := sqlite.NewSQLiteStorage(*dsn, zap.NewNop())
	if err != nil {
		log.Fatal(err)
	}
	defer repo.Close()

	ctx := context.Background()
	aliases := append(models.AliasNames(), "gpt4", "claude-3-opus")
	now := time.Now().UTC()

	err = repo.WithTx(ctx, func(tx store.Repository) error {
		for d := 0; d < *days; d++ {
			day := now.AddDate(0, 0, -d)
			for i := 0; i < *perDay; i++ {
				key := aliases[rand.Intn(len(aliases))]
				result, lookupErr := models.ResolveAlias(key)

				event := &model.LookupEvent{
					ID:        uuid.New().String(),
					Kind:      models.KindAlias,
					Key:       key,
					Result:    result,
					Found:     lookupErr == nil,
					Source:    "seed",
					CreatedAt: day.Add(-time.Duration(rand.Intn(3600)) * time.Second),
				}
				if err := tx.Lookups().Log(ctx, event); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nSuccessfully seeded database!\n")
	fmt.Printf("Inserted %d lookup events into %s\n", (*days)*(*perDay), *dsn)
}
