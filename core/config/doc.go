// Package config loads the application configuration.
//
// Configuration is sourced from environment variables and an optional .env
// file, with defaults declared via struct tags on the partial config types
// (server.Config, logger.Config, database.Config). Environment variables map
// to nested keys by underscore, e.g. DATABASE_HOST -> database.host.
package config
