package cmd

import (
	"log"

	"github.com/GoCardsEdu/GoCards-API/core/config"
	"github.com/GoCardsEdu/GoCards-API/core/database"
	"github.com/GoCardsEdu/GoCards-API/core/logger"
	cardmodels "github.com/GoCardsEdu/GoCards-API/feature/card/models"
	deckmodels "github.com/GoCardsEdu/GoCards-API/feature/deck/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateVerify bool

// migrateCmd creates or updates the database schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Runs the schema migration for decks, cards and facet tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		err = db.AutoMigrate(
			&deckmodels.DeckRow{},
			&cardmodels.CardRow{},
			&cardmodels.CardFrontRow{},
			&cardmodels.CardBackRow{},
		)
		if err != nil {
			return err
		}
		logg.Info("Schema migrated")

		if !migrateVerify {
			return nil
		}

		expected := map[string][]string{
			"decks":       {"id", "name", "created_at", "updated_at"},
			"cards":       {"id", "deck_id", "ordinal", "created_at", "updated_at"},
			"card_fronts": {"card_id", "name", "content"},
			"card_backs":  {"card_id", "name", "content"},
		}
		for table, columns := range expected {
			missing, err := database.VerifyColumns(db, table, columns)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				logg.Warn("Table is missing columns",
					zap.String("table", table),
					zap.Strings("missing", missing),
				)
			} else {
				logg.Info("Table verified", zap.String("table", table))
			}
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateVerify, "verify", false, "verify table columns after migrating")
	RootCmd.AddCommand(migrateCmd)
}
