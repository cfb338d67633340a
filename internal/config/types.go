package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Fortnite      FortniteConfig
	Turso         TursoConfig
}

// FortniteConfig configures the fortnite-api.com client.
type FortniteConfig struct {
	APIKey  string
	BaseURL string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
