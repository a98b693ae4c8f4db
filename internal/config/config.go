package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vultisig/addresscodec/common"
)

// EnvPrefix prefixes every environment variable, e.g. ADDRESSCODEC_SERVER_LISTEN.
const EnvPrefix = "ADDRESSCODEC"

const (
	KeyServerListen          = "server.listen"
	KeyServerShutdownTimeout = "server.shutdown_timeout"
	KeyNetwork               = "network"
	KeyStorageDir            = "storage.dir"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Network string        `mapstructure:"network"`
	Storage StorageConfig `mapstructure:"storage"`
}

type ServerConfig struct {
	Listen          string        `mapstructure:"listen"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

// New returns a viper instance with defaults set and environment lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyServerListen, ":8080")
	v.SetDefault(KeyServerShutdownTimeout, 5*time.Second)
	v.SetDefault(KeyNetwork, common.Mainnet.String())
	v.SetDefault(KeyStorageDir, DefaultStorageDir())

	// replace dots with underscores in env
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile when given and decodes the settings.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultNetwork returns the network used when a command is not told otherwise.
func (c *Config) DefaultNetwork() common.Network {
	network, err := common.FromString(c.Network)
	if err != nil {
		return common.Mainnet
	}
	return network
}

func (c *Config) validate() error {
	if _, err := common.FromString(c.Network); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Server.Listen == "" {
		return errors.New("invalid config: server.listen is empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid config: server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Storage.Dir == "" {
		return errors.New("invalid config: storage.dir is empty")
	}
	return nil
}

// DefaultStorageDir returns the standard directory for minted versions
func DefaultStorageDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".addresscodec"
	}
	return filepath.Join(homeDir, ".addresscodec")
}
