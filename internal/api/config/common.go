package config

// Config 配置主体
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	DB          DBConfig          `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Facebook    FacebookConfig    `mapstructure:"facebook"`
	ScoreAPI    ScoreAPIConfig    `mapstructure:"score_api"`
	CustomerAPI CustomerAPIConfig `mapstructure:"customer_api"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	Points      PointsConfig      `mapstructure:"points"`
	Auth        AuthConfig        `mapstructure:"auth"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// FacebookConfig Facebook Graph API 配置
type FacebookConfig struct {
	GraphURL  string `mapstructure:"graph_url"`
	PageID    string `mapstructure:"page_id"`
	PageToken string `mapstructure:"page_token"`
	Timeout   int    `mapstructure:"timeout"`

	// TagFilter 标签过滤比较目标: user(与解析出的用户ID比较) 或 page(与页面ID比较)
	TagFilter string `mapstructure:"tag_filter"`

	// CampaignTopic 活动主题，关键词分类未命中时的兜底值
	CampaignTopic string `mapstructure:"campaign_topic"`
}

// ScoreAPIConfig 内容打分服务配置
type ScoreAPIConfig struct {
	URL     string `mapstructure:"url"`
	ApiKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"`
}

// CustomerAPIConfig 客户积分服务配置
type CustomerAPIConfig struct {
	URL     string `mapstructure:"url"`
	ApiKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"`
}

type KafkaConfig struct {
	Brokers    []string   `mapstructure:"brokers"`
	Sasl       SaslConfig `mapstructure:"sasl"`
	ClaimTopic string     `mapstructure:"claim_topic"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// PointsConfig 积分换算配置
type PointsConfig struct {
	// Multiplier 相关性分数换算积分的倍率
	Multiplier float64 `mapstructure:"multiplier"`
	// BalanceCacheTTL 余额缓存秒数
	BalanceCacheTTL int `mapstructure:"balance_cache_ttl"`
}

// AuthConfig 网关身份配置
type AuthConfig struct {
	// DevEmail 本地开发时缺省的用户邮箱，生产环境留空
	DevEmail string `mapstructure:"dev_email"`
}
