package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"
)

// Pool represents a connection pool to the PostgreSQL database
var Pool *pgxpool.Pool

// Initialize creates and initializes the PostgreSQL connection pool
func Initialize() {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		viper.GetString("PostgreSQL.Host"),
		viper.GetInt("PostgreSQL.Port"),
		viper.GetString("PostgreSQL.User"),
		viper.GetString("PostgreSQL.Password"),
		viper.GetString("PostgreSQL.DBName"),
		viper.GetString("PostgreSQL.Schema"),
	)

	connectConf, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Fatalf("Unable to parse PostgreSQL config: %v", err)
	}

	connectConf.MaxConns = int32(viper.GetInt("PostgreSQL.PoolMaxConns"))
	connectConf.HealthCheckPeriod = 15 * time.Second
	connectConf.ConnConfig.ConnectTimeout = 5 * time.Second

	// Set timezone to PGX runtime
	if s := os.Getenv("TZ"); s != "" {
		connectConf.ConnConfig.RuntimeParams["timezone"] = s
	}

	Pool, err = pgxpool.NewWithConfig(context.Background(), connectConf)
	if err != nil {
		log.Fatalf("Unable to create PostgreSQL connection pool: %v", err)
	}

	log.Println("Connected to PostgreSQL successfully")
}

// Ready reports whether a database pool is available. The bot runs without
// one when no PostgreSQL host is configured.
func Ready() bool {
	return Pool != nil
}

// Close closes the connection pool
func Close() {
	if Pool != nil {
		Pool.Close()
	}
}

// Migrate sets up the database schema
func Migrate() {
	log.Println("Starting database migration...")

	guildPrefixesSchema := `
    CREATE TABLE IF NOT EXISTS guild_prefixes (
        guild_id VARCHAR(50) PRIMARY KEY,
        prefix VARCHAR(10) NOT NULL,
        updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
    );`
	_, err := Pool.Exec(context.Background(), guildPrefixesSchema)
	if err != nil {
		log.Fatalf("Failed to migrate guild_prefixes table: %v", err)
	}

	log.Println("Database migration completed")
}

// GetGuildPrefix returns the command prefix configured for a guild, or the
// empty string when the guild has no override.
func GetGuildPrefix(guildID string) (string, error) {
	var prefix string
	err := Pool.QueryRow(
		context.Background(),
		"SELECT prefix FROM guild_prefixes WHERE guild_id = $1",
		guildID,
	).Scan(&prefix)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get guild prefix: %w", err)
	}
	return prefix, nil
}

// SetGuildPrefix stores or replaces the command prefix for a guild.
func SetGuildPrefix(guildID, prefix string) error {
	_, err := Pool.Exec(
		context.Background(),
		`INSERT INTO guild_prefixes (guild_id, prefix) VALUES ($1, $2)
         ON CONFLICT (guild_id) DO UPDATE SET prefix = $2, updated_at = CURRENT_TIMESTAMP`,
		guildID, prefix,
	)
	if err != nil {
		return fmt.Errorf("failed to set guild prefix: %w", err)
	}
	return nil
}
