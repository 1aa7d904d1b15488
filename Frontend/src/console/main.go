package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ahinestrog/bookstore-console/Backend/src/catalog"
	"github.com/ahinestrog/bookstore-console/Backend/src/customer"
	"github.com/ahinestrog/bookstore-console/Backend/src/order"
	"github.com/ahinestrog/bookstore-console/Backend/src/store"
)

func main() {
	cfg := LoadConfig()
	log.Logger = newLogger(cfg.LogLevel)
	log.Info().
		Str("catalog", cfg.CatalogDSN).
		Bool("seed", cfg.SeedCatalog).
		Str("rabbit", cfg.RabbitURL).
		Msg("starting bookstore")

	ctx := context.Background()

	db, err := catalog.OpenSQLite(cfg.CatalogDSN)
	must(err)
	repo := catalog.NewSQLiteRepo(db)
	defer repo.Close()
	must(repo.Init(ctx))
	if cfg.SeedCatalog {
		must(repo.Seed(ctx))
	}
	cat, err := catalog.NewService(repo, cfg.CacheSize)
	must(err)

	customers, err := defaultCustomers()
	must(err)

	rb, err := order.NewRabbit(cfg.RabbitURL, cfg.RabbitExchange)
	if err != nil {
		log.Warn().Err(err).Msg("rabbit not available, continuing without events")
		rb = nil
	}
	defer rb.Close()

	app := NewApp(store.New(cat, customers, rb, log.Logger), os.Stdin, os.Stdout)
	must(app.Run(ctx))
}

// defaultCustomers are the profiles offered by the "Select Customer" option.
func defaultCustomers() (*customer.Directory, error) {
	dir := customer.NewDirectory()
	for _, p := range []struct {
		id, name string
		tier     customer.Tier
	}{
		{"C001", "Alice Wonderland", customer.TierVIP},
		{"C002", "Bob The Builder", customer.TierGeneral},
	} {
		c, err := customer.New(p.id, p.name, p.tier)
		if err != nil {
			return nil, err
		}
		if err := dir.Add(c); err != nil {
			return nil, err
		}
	}
	return dir, nil
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
