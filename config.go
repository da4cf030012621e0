package hwid

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the environment variable prefix read by LoadConfig.
const EnvPrefix = "HWID"

// Config 采集配置
type Config struct {
	// CommandTimeout 单个外部命令的最长等待时间
	CommandTimeout time.Duration `split_words:"true" default:"10s"`
	// Sudo 以 `sudo -n` 调用 dmidecode
	Sudo bool `split_words:"true" default:"true"`
	// NetworkInterface 指定用于网卡标识的网卡名，为空时使用系统默认
	NetworkInterface string `split_words:"true"`
	LogLevel         string `split_words:"true" default:"warn"`
	LogFormat        string `split_words:"true" default:"text"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		CommandTimeout: defaultCommandTimeout,
		Sudo:           true,
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

// LoadConfig reads the configuration from environment variables with the
// given prefix (EnvPrefix when empty), e.g. HWID_COMMAND_TIMEOUT=5s.
func LoadConfig(prefix string) (Config, error) {
	if prefix == "" {
		prefix = EnvPrefix
	}
	cfg := DefaultConfig()
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment configuration: %w", err)
	}
	if cfg.CommandTimeout <= 0 {
		return Config{}, fmt.Errorf("command timeout must be positive, got %s", cfg.CommandTimeout)
	}
	return cfg, nil
}
