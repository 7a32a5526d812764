// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL, PostgreSQL or SQLite connections based on the application's configuration.
// The connection backs the SQL ledger store (core/ledger/store.DatabaseStore).
//
// # Connect
//
// Connect builds the DSN for the configured driver, applies pool settings and
// verifies the connection with a ping bounded by the configured timeout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
