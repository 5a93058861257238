// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure a Postgres connection based on the application's configuration.
// A sqlite driver is available for local development.
//
// # Connect
//
// The generic Connect function establishes a connection to the database and
// configures the connection pool. The deck/card replacement path relies on
// row-level SELECT ... FOR UPDATE locking, so Postgres is the production
// driver.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// migrate command's verify step to confirm the deck and card tables carry the
// expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyColumns(db, "cards", []string{"id", "deck_id"})
package database
