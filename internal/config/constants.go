package config

const (
	// DefaultPort is the port the catalog API listens on
	DefaultPort = 3000

	// DefaultDatabasePath is the default path for the catalog SQLite file
	DefaultDatabasePath = "./library.db"

	// DefaultAllowedOrigin is the single origin allowed by the default CORS policy
	DefaultAllowedOrigin = "http://localhost:3000"
)
