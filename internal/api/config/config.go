package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("facebook.graph_url", "https://graph.facebook.com/v19.0")
	viper.SetDefault("facebook.timeout", 10)
	viper.SetDefault("facebook.tag_filter", "user")
	viper.SetDefault("facebook.campaign_topic", "raincoat")
	viper.SetDefault("score_api.timeout", 60)
	viper.SetDefault("customer_api.timeout", 60)
	viper.SetDefault("points.multiplier", 100)
	viper.SetDefault("points.balance_cache_ttl", 60)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
