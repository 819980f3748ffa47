package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hanabira-bot/hanabira/internal/config"
	"github.com/hanabira-bot/hanabira/internal/db"
	"github.com/hanabira-bot/hanabira/internal/discord"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env (if present) so viper's env binding can pick values up
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize configuration
	config.Initialize()
	log.Printf("Using config file: %s", *configFile)

	token := viper.GetString("DiscordBot.Token")
	if token == "" {
		log.Fatal("DiscordBot.Token is not configured")
	}

	// Initialize database when one is configured; without it the bot runs
	// with the static prefix from the config.
	if viper.GetString("PostgreSQL.Host") != "" {
		db.Initialize()
		db.Migrate()
		defer db.Close()
	} else {
		log.Println("No database configured, guild prefix overrides are disabled")
	}

	// Initialize Discord bot
	if err := discord.Initialize(token); err != nil {
		log.Fatalf("Failed to initialize Discord bot: %v", err)
	}
	defer discord.Close()

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle termination signals
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalChan
		log.Println("Received termination signal, shutting down gracefully...")
		cancel()
	}()

	log.Println("Hanabira is now running. Press CTRL+C to exit.")
	<-ctx.Done()
	log.Println("Hanabira shutting down...")
}
