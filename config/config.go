package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Timeline defaults.
	MinHour            int     `mapstructure:"MIN_HOUR"`
	MaxHour            int     `mapstructure:"MAX_HOUR"`
	ClickDurationMin   int     `mapstructure:"CLICK_DURATION_MIN"`
	MinDragDurationMin int     `mapstructure:"MIN_DRAG_DURATION_MIN"`
	QuantizeStepMin    int     `mapstructure:"QUANTIZE_STEP_MIN"`
	DragThresholdPx    float64 `mapstructure:"DRAG_THRESHOLD_PX"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIN_HOUR", 9)
	viper.SetDefault("MAX_HOUR", 17)
	viper.SetDefault("CLICK_DURATION_MIN", 30)
	viper.SetDefault("MIN_DRAG_DURATION_MIN", 15)
	viper.SetDefault("QUANTIZE_STEP_MIN", 15)
	viper.SetDefault("DRAG_THRESHOLD_PX", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
