package pkg

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultSshAddr     = ":2222"
	DefaultIdleTimeout = 5 * time.Minute
	DefaultMaxSessions = 64
)

type Config struct {
	Addr        string
	HostKey     string
	Binary      string
	Log         string
	ClientLog   string
	IdleTimeout time.Duration
	MaxSessions int
}

// LoadConfig reads server defaults from the environment. Variables already
// set win over the ones in the env files.
func LoadConfig(envFiles ...string) Config {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to load %s: %v", f, err)
		}
	}

	return Config{
		Addr:        GetEnv("FOURTERM_SSH_ADDR", DefaultSshAddr),
		HostKey:     GetEnv("FOURTERM_HOST_KEY", ""),
		Binary:      GetEnv("FOURTERM_BIN", "fourterm"),
		Log:         GetEnv("FOURTERM_LOG", "./server.log"),
		ClientLog:   GetEnv("FOURTERM_CLIENT_LOG", os.DevNull),
		IdleTimeout: GetEnvAsDuration("FOURTERM_IDLE_TIMEOUT", DefaultIdleTimeout),
		MaxSessions: GetEnvAsInt("FOURTERM_MAX_SESSIONS", DefaultMaxSessions),
	}
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	v := GetEnv(key, "")
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return i
}

// GetEnvAsDuration accepts Go durations ("90s") or a plain number of seconds
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := GetEnv(key, "")
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Invalid %s=%q, using %s", key, v, fallback)
	return fallback
}
