package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	DiscordBot DiscordBotConfig
	PostgreSQL PostgreSQLConfig
}

// DiscordBotConfig holds Discord bot configuration
type DiscordBotConfig struct {
	Token       string
	Prefix      string
	Name        string
	Description string
	EmbedColor  int
}

// PostgreSQLConfig holds database configuration
type PostgreSQLConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	Schema       string
	PoolMaxConns int
}

// Initialize sets up viper with defaults and loads config
func Initialize() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("DiscordBot.Prefix", "!")
	viper.SetDefault("DiscordBot.Name", "Hanabira")
	viper.SetDefault("DiscordBot.Description", "A general purpose companion bot.")
	viper.SetDefault("DiscordBot.EmbedColor", 0xb01ec3)

	// Leaving the host empty disables the database entirely; the bot then
	// runs with the static prefix from this config.
	viper.SetDefault("PostgreSQL.Host", "")
	viper.SetDefault("PostgreSQL.Port", 5432)
	viper.SetDefault("PostgreSQL.User", "postgres")
	viper.SetDefault("PostgreSQL.DBName", "hanabira")
	viper.SetDefault("PostgreSQL.Schema", "public")
	viper.SetDefault("PostgreSQL.PoolMaxConns", 10)

	// Environment variables override the file, e.g. DISCORDBOT_TOKEN.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Load configuration
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found, using defaults and environment")
			return
		}
		log.Fatalf("Fatal error reading config file: %v", err)
	}

	log.Println("Configuration loaded successfully")
}

// GetString gets a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt gets an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}
