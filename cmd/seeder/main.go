package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fortstats/tracker/internal/database"
	"github.com/fortstats/tracker/internal/fortnite"
	"github.com/joho/godotenv"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "tracker.db",
		"MIGRATIONS_DIR": "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	// Optional remote database; when unset the local SQLite file is used.
	for _, key := range []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	log.Info("Successfully connected to the database.")

	// A small starter roster so a fresh install has a leaderboard to show.
	dummyFriends := []fortnite.PlayerStats{
		{Username: "Seeder Player A", Level: 112, Kills: 842, Wins: 61, KD: 1.34, MatchesPlayed: 690, WinRate: 8.8},
		{Username: "Seeder Player B", Level: 74, Kills: 410, Wins: 22, KD: 0.91, MatchesPlayed: 473, WinRate: 4.7},
		{Username: "Seeder Player C", Level: 203, Kills: 2117, Wins: 188, KD: 2.45, MatchesPlayed: 1052, WinRate: 17.9},
		{Username: "Seeder Player D", Level: 31, Kills: 96, Wins: 3, KD: 0.52, MatchesPlayed: 201, WinRate: 1.5},
	}

	startTime := time.Now()

	payload, err := json.Marshal(dummyFriends)
	if err != nil {
		log.Fatalf("Failed to marshal starter roster: %s", err)
	}

	_, err = db.Exec(`
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		"fortniteFriends", string(payload), time.Now().Unix())
	if err != nil {
		log.Fatalf("Failed to insert starter roster: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully seeded the starter roster.", "friends", len(dummyFriends), "duration", duration)
}
