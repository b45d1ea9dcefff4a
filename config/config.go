package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	WebPort        int    `mapstructure:"WEB_PORT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	DataFile       string `mapstructure:"DATA_FILE"`
	LegacyDataFile string `mapstructure:"LEGACY_DATA_FILE"`

	// Matching heuristics. The margins and slacks are tuned values carried
	// over from observed cutoff behavior, not validated policy; they stay
	// configurable pending product-owner confirmation.
	NearbyRankMargin    float64 `mapstructure:"NEARBY_RANK_MARGIN"`
	NearbyRankSlack     int     `mapstructure:"NEARBY_RANK_SLACK"`
	DirectRankSlack     int     `mapstructure:"DIRECT_RANK_SLACK"`
	FuzzyMatchThreshold float64 `mapstructure:"FUZZY_MATCH_THRESHOLD"`
	ResolverCacheSize   int     `mapstructure:"RESOLVER_CACHE_SIZE"`

	RateLimitRequestsPerMin int `mapstructure:"RATE_LIMIT_REQUESTS_PER_MIN"`
	RateLimitBurstSize      int `mapstructure:"RATE_LIMIT_BURST_SIZE"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("WEB_PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_FILE", "kcet_cutoffs_master.json")
	viper.SetDefault("LEGACY_DATA_FILE", "kcet_cutoffs.json")
	viper.SetDefault("NEARBY_RANK_MARGIN", 0.15)
	viper.SetDefault("NEARBY_RANK_SLACK", 75000)
	viper.SetDefault("DIRECT_RANK_SLACK", 1000)
	viper.SetDefault("FUZZY_MATCH_THRESHOLD", 0.6)
	viper.SetDefault("RESOLVER_CACHE_SIZE", 256)
	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_MIN", 60)
	viper.SetDefault("RATE_LIMIT_BURST_SIZE", 10)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	return &config
}
