package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/devdecrux/pocketr_api/internal/core/services"
	"github.com/devdecrux/pocketr_api/internal/middleware"
	"github.com/devdecrux/pocketr_api/internal/platform/config"
	"github.com/devdecrux/pocketr_api/internal/repositories/database/pgsql"
	"github.com/devdecrux/pocketr_api/internal/seed"
	"github.com/devdecrux/pocketr_api/pkg/database"
)

type migrateCmd struct {
	source string
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply pending database migrations" }
func (*migrateCmd) Usage() string {
	return `pocketr_admin migrate [-source <url>]

  Applies every pending up migration. The database is read from PGSQL_URL.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.source, "source", "", "Migration source URL (defaults to MIGRATIONS_PATH).")
}

func (c *migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	source := c.source
	if source == "" {
		source = cfg.MigrationsPath
	}
	if err := database.RunMigrations(cfg.DatabaseURL, source); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type seedCurrenciesCmd struct{}

func (*seedCurrenciesCmd) Name() string { return "seed-currencies" }
func (*seedCurrenciesCmd) Synopsis() string {
	return "insert the built-in currency list into an empty database"
}
func (*seedCurrenciesCmd) Usage() string {
	return `pocketr_admin seed-currencies

  Inserts the built-in ISO 4217 currencies when the currency table is empty.
`
}

func (*seedCurrenciesCmd) SetFlags(*flag.FlagSet) {}

func (*seedCurrenciesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	currencies, err := seed.Currencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer database.ClosePgxPool(pool)

	repos := pgsql.NewRepositoryProvider(pool)
	written, err := services.NewCurrencyService(repos.CurrencyRepo).SeedCurrencies(ctx, currencies)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("seeded %d currencies\n", written)
	return subcommands.ExitSuccess
}

type issueTokenCmd struct {
	userID string
	ttl    time.Duration
}

func (*issueTokenCmd) Name() string { return "issue-token" }
func (*issueTokenCmd) Synopsis() string {
	return "print a signed bearer token for a user (development only)"
}
func (*issueTokenCmd) Usage() string {
	return `pocketr_admin issue-token -user <id> [-ttl <duration>]

  Signs a token with JWT_SECRET and JWT_ISSUER whose subject is the given user id.
`
}

func (c *issueTokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "User id to put in the token subject.")
	f.DurationVar(&c.ttl, "ttl", 0, "Token lifetime (defaults to JWT_EXPIRY_DURATION).")
}

func (c *issueTokenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.userID == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if cfg.IsProduction {
		fmt.Fprintln(os.Stderr, "refusing to issue tokens with IS_PRODUCTION=true")
		return subcommands.ExitFailure
	}
	ttl := c.ttl
	if ttl <= 0 {
		ttl = cfg.JWTExpiryDuration
	}
	token, err := middleware.IssueToken(cfg.JWTSecret, cfg.JWTIssuer, c.userID, ttl, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(token)
	return subcommands.ExitSuccess
}
