package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"prospect-pain-engine/pain"
)

// Config holds application configuration
type Config struct {
	// HTTP server
	APIPort int

	// Database configuration
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string

	// Redis configuration
	RedisHost     string
	RedisPassword string
	RedisPort     string

	// Review scheduler
	Scheduler SchedulerConfig

	// Pain engine configuration
	Engine pain.Config

	// Optional JSON file overriding the built-in lookup tables
	TablesFile string
}

// SchedulerConfig holds the re-score loop parameters
type SchedulerConfig struct {
	Enabled         bool
	IntervalMinutes int
	Workers         int
	BatchSize       int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		APIPort: getEnvInt("API_PORT", 8090),

		// Database configuration
		DatabaseHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DatabasePort:     getEnvOrDefault("DB_PORT", "5432"),
		DatabaseName:     getEnvOrDefault("DB_NAME", "prospect_pain"),
		DatabaseUser:     getEnvOrDefault("DB_USER", "prospect"),
		DatabasePassword: getEnvOrDefault("DB_PASSWORD", "prospect123"),

		// Redis configuration
		RedisHost:     getEnvOrDefault("REDIS_HOST", "localhost"),
		RedisPort:     getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),

		// Review scheduler
		Scheduler: SchedulerConfig{
			Enabled:         getEnvOrDefault("REVIEW_SCHEDULER_ENABLED", "true") == "true",
			IntervalMinutes: getEnvInt("REVIEW_INTERVAL_MINUTES", 60),
			Workers:         getEnvInt("REVIEW_WORKERS", 4),
			BatchSize:       getEnvInt("REVIEW_BATCH_SIZE", 100),
		},

		// Pain engine configuration. Normalize clamps malformed values here,
		// at load time, so call sites never see them.
		Engine: pain.Config{
			Sources: pain.SourceToggles{
				FinancialTrends:        getEnvOrDefault("PAIN_SOURCE_FINANCIAL_TRENDS", "true") == "true",
				OperationalMetrics:     getEnvOrDefault("PAIN_SOURCE_OPERATIONAL_METRICS", "true") == "true",
				EnrichedProfiles:       getEnvOrDefault("PAIN_SOURCE_ENRICHED_PROFILES", "true") == "true",
				RegulatoryIntelligence: getEnvOrDefault("PAIN_SOURCE_REGULATORY_INTEL", "true") == "true",
				OpportunitySignals:     getEnvOrDefault("PAIN_SOURCE_OPPORTUNITY_SIGNALS", "true") == "true",
			},
			Methods: pain.MethodToggles{
				GrowthContraction:   getEnvOrDefault("PAIN_METHOD_GROWTH_CONTRACTION", "true") == "true",
				MarginErosion:       getEnvOrDefault("PAIN_METHOD_MARGIN_EROSION", "true") == "true",
				TechStackAging:      getEnvOrDefault("PAIN_METHOD_TECH_STACK_AGING", "true") == "true",
				ScalingPressure:     getEnvOrDefault("PAIN_METHOD_SCALING_PRESSURE", "true") == "true",
				CompetitivePressure: getEnvOrDefault("PAIN_METHOD_COMPETITIVE_PRESSURE", "true") == "true",
				ComplianceExposure:  getEnvOrDefault("PAIN_METHOD_COMPLIANCE_EXPOSURE", "true") == "true",
				ExecutiveExpansion:  getEnvOrDefault("PAIN_METHOD_EXECUTIVE_EXPANSION", "true") == "true",
			},
			Thresholds: pain.Thresholds{
				CriticalPain:  getEnvFloat("PAIN_THRESHOLD_CRITICAL", 1_000_000),
				ModeratePain:  getEnvFloat("PAIN_THRESHOLD_MODERATE", 250_000),
				MinViablePain: getEnvFloat("PAIN_THRESHOLD_MIN_VIABLE", 50_000),
			},
		}.Normalize(),

		TablesFile: os.Getenv("PAIN_TABLES_FILE"),
	}
}

// getEnvInt gets environment variable as int or returns default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	if _, err := fmt.Sscanf(value, "%d", &intValue); err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvFloat gets environment variable as float64 or returns default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var floatValue float64
	if _, err := fmt.Sscanf(value, "%f", &floatValue); err != nil {
		return defaultValue
	}
	return floatValue
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
