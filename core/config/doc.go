// Package config provides configuration management for the trade ledger.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Log: Logging level and format
//   - Ledger: persistence backend (memory, file, database, storage, redis), key and cache TTL
//   - Database: MySQL / PostgreSQL / SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Redis: Redis address and database index
//
// Defaults live in the `default` struct tags of each section. Environment variables
// map to nested keys by replacing dots with underscores (LEDGER_BACKEND -> ledger.backend).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Ledger.Backend)
package config
