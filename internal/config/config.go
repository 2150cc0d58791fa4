package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve in minimal containers

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	TimeZone    string
	// Inventory behavior
	StrictMode           bool
	LocationDeletePolicy string
	SeedFile             string
	// Kafka Configuration
	KafkaEnabled        bool
	KafkaBrokers        []string
	KafkaTopicItems     string
	KafkaTopicMovements string
	KafkaTopicLocations string
	KafkaClientID       string
	KafkaAcks           string
	KafkaRetries        int
	// Kafka consumer (listener)
	KafkaGroupID      string
	ListenerPort      string
	ListenerRetries   int
	ListenerBackoffMs int
	// Redis Configuration (optional)
	UseCache      bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	// TTLs in seconds
	RecipeCacheTTL int
	IdempotencyTTL int
	// Recipe suggestions (LLM)
	LLMProvider  string
	LLMAPIKey    string
	LLMBaseURL   string
	LLMModel     string
	LLMMaxTokens int
	LLMTimeout   int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9093"), ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		TimeZone:    getEnv("TIMEZONE", "Local"),
		// Inventory behavior
		StrictMode:           getEnvAsBool("STRICT_MODE", true),
		LocationDeletePolicy: getEnv("LOCATION_DELETE_POLICY", "block"),
		SeedFile:             getEnv("SEED_FILE", ""),
		// Kafka Configuration
		KafkaEnabled:        getEnvAsBool("KAFKA_ENABLED", false),
		KafkaBrokers:        kafkaBrokers,
		KafkaTopicItems:     getEnv("KAFKA_TOPIC_ITEMS", "household.items"),
		KafkaTopicMovements: getEnv("KAFKA_TOPIC_MOVEMENTS", "household.movements"),
		KafkaTopicLocations: getEnv("KAFKA_TOPIC_LOCATIONS", "household.locations"),
		KafkaClientID:       getEnv("KAFKA_CLIENT_ID", "home-inventory"),
		KafkaAcks:           getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:        getEnvAsInt("KAFKA_RETRIES", 3),
		// Kafka consumer
		KafkaGroupID:      getEnv("KAFKA_GROUP_ID", "home-inventory-listener"),
		ListenerPort:      getEnv("LISTENER_PORT", "8081"),
		ListenerRetries:   getEnvAsInt("LISTENER_MAX_RETRIES", 3),
		ListenerBackoffMs: getEnvAsInt("LISTENER_RETRY_DELAY_MS", 100),
		// Redis Configuration
		UseCache:      getEnvAsBool("USE_CACHE", false),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		// TTLs
		RecipeCacheTTL: getEnvAsInt("RECIPE_CACHE_TTL", 3600),
		IdempotencyTTL: getEnvAsInt("IDEMPOTENCY_TTL", 300),
		// Recipe suggestions
		LLMProvider:  getEnv("LLM_PROVIDER", "openai"),
		LLMAPIKey:    getEnv("LLM_API_KEY", ""),
		LLMBaseURL:   getEnv("LLM_BASE_URL", ""),
		LLMModel:     getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMMaxTokens: getEnvAsInt("LLM_MAX_TOKENS", 2048),
		LLMTimeout:   getEnvAsInt("LLM_TIMEOUT", 30),
	}
}

// Location resolves TimeZone. "Local" and empty mean the process local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.ToLower(value) == "true" || value == "1"
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
