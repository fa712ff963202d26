package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Upload  UploadConfig
	Tracing TracingConfig `mapstructure:"tracing"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type ServerConfig struct {
	Port      string
	Mode      string
	StaticDir string `mapstructure:"static_dir"`
}

type AIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

type UploadConfig struct {
	TempDir     string `mapstructure:"temp_dir"`
	MaxFileSize int64  `mapstructure:"max_file_size"` // 单文件上限（字节）
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("EXAM_PREP")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Upload
	viper.BindEnv("upload.temp_dir", "UPLOAD_TEMP_DIR")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "7860")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("ai.base_url", "https://api.deepseek.com/v1")
	viper.SetDefault("ai.model", "deepseek-chat")
	viper.SetDefault("ai.timeout_sec", 60)
	viper.SetDefault("upload.temp_dir", "uploads")
	viper.SetDefault("upload.max_file_size", 50*1024*1024)

	// 配置文件缺失时全部走默认值+环境变量；API Key 缺失不阻止启动，
	// 只会让每次推理调用立即失败并触发降级
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.Upload.TempDir); os.IsNotExist(err) {
		os.MkdirAll(cfg.Upload.TempDir, 0755)
	}

	return &cfg, nil
}
