package global

import (
	"context"
	"os"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// GetMongoURI returns the remote store URI. An empty value means the remote
// store is not configured; the product repository then serves the local
// fallback store instead.
func GetMongoURI() string {
	return os.Getenv("MONGODB_URI")
}

func GetDatabaseName() string {
	return GetEnvOrDefault("MONGODB_DATABASE", "getsbi-play")
}
