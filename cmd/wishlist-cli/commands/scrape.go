package commands

import (
	"context"
	"fmt"
	"log/slog"
	"wishlist-scraper/lib/scrapers/siriust/core"
	"wishlist-scraper/services/wishlist/scraper"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-input"
)

// promptCredentials asks for whatever the config leaves out.
type promptCredentials struct {
	config Config
}

func (p promptCredentials) Credentials(ctx context.Context) (core.Credentials, error) {
	creds := core.Credentials{
		Login:    p.config.Username,
		Password: p.config.Password,
	}
	if creds.Login != "" && creds.Password != "" {
		return creds, nil
	}

	ui := input.DefaultUI()
	var err error
	if creds.Login == "" {
		creds.Login, err = ui.Ask("login:", &input.Options{
			Required:  true,
			Loop:      true,
			HideOrder: true,
		})
		if err != nil {
			return core.Credentials{}, err
		}
	}
	if creds.Password == "" {
		creds.Password, err = ui.Ask("password:", &input.Options{
			Required:  true,
			Loop:      true,
			Mask:      true,
			HideOrder: true,
		})
		if err != nil {
			return core.Credentials{}, err
		}
	}
	return creds, nil
}

var createSchema bool

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Logs in and stores the account's profile, wishlist products and their reviews.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		config, err := readConfig(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		s, closeStore, err := openStore(config)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer closeStore()

		if createSchema {
			err = s.CreateSchema(ctx)
			if err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}

		result, err := scraper.Scrape(ctx, scraper.Options{
			Client:      config.ClientOptions(),
			Credentials: promptCredentials{config: config},
			Store:       s,
		})
		if err != nil {
			return fmt.Errorf("scrape: %w", err)
		}

		slog.InfoContext(
			ctx, "scrape finished",
			"user_id", result.UserID,
			"products", len(result.Products),
			"failed_writes", result.FailedWrites(),
		)
		stored := 0
		for _, w := range result.Writes {
			if w.Err == nil {
				stored++
			}
		}
		fmt.Printf("stored %d of %d products for %s\n", stored, len(result.Products), result.Profile.Email)
		return nil
	},
}

func init() {
	scrapeCmd.Flags().BoolVar(&createSchema, "create-schema", false, "create the tables before scraping if they don't exist")
}
