package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	Addr          string
	MongoURI      string
	MongoDatabase string

	// APIKeys maps an x-api-key value to the hex id of the user it
	// authenticates as. Empty means "use the built-in seed accounts".
	APIKeys map[string]string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable not set")
	}

	mongoDatabase := os.Getenv("MONGO_DATABASE")
	if mongoDatabase == "" {
		mongoDatabase = "cartly"
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":3000"
	}

	apiKeys, err := parseAPIKeys(os.Getenv("API_KEYS"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:          addr,
		MongoURI:      mongoURI,
		MongoDatabase: mongoDatabase,
		APIKeys:       apiKeys,
	}, nil
}

// parseAPIKeys reads "key=userID,key2=userID2". An empty input returns
// nil so the caller can fall back to the default table.
func parseAPIKeys(raw string) (map[string]string, error) {
	if raw == "" {
		return nil, nil
	}

	keys := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		key, userID, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" || userID == "" {
			return nil, fmt.Errorf("API_KEYS entry %q is not key=userID", pair)
		}
		keys[key] = userID
	}
	return keys, nil
}
