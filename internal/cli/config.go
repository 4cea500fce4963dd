package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/scratchbook/internal/catalog"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver"
	"github.com/mesh-intelligence/scratchbook/internal/images"
	"github.com/mesh-intelligence/scratchbook/internal/intake"
	"github.com/mesh-intelligence/scratchbook/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envFileName    = ".env"
	envPrefix      = "SCRATCHBOOK"

	cfgKeyBackend         = "backend"
	cfgKeyDataDir         = "data_dir"
	cfgKeyPageSize        = "page_size"
	cfgKeyImageMaxDim     = "image_max_dim"
	cfgKeyImageQuality    = "image_quality"
	cfgKeyListenAddr      = "listen_addr"
	cfgKeyLogLevel        = "log_level"
	cfgKeyAnalyzerTimeout = "analyzer_timeout"

	defaultLogLevel = "warn"
)

// settings is the resolved configuration for one invocation.
type settings struct {
	Backend         string
	DataDir         string
	PageSize        int
	ImageMaxDim     int
	ImageQuality    int
	ListenAddr      string
	LogLevel        string
	AnalyzerTimeout time.Duration
}

// configFile is the shape written to config.yaml on first run.
type configFile struct {
	Backend         string `yaml:"backend"`
	DataDir         string `yaml:"data_dir,omitempty"`
	PageSize        int    `yaml:"page_size"`
	ImageMaxDim     int    `yaml:"image_max_dim"`
	ImageQuality    int    `yaml:"image_quality"`
	ListenAddr      string `yaml:"listen_addr"`
	LogLevel        string `yaml:"log_level"`
	AnalyzerTimeout string `yaml:"analyzer_timeout"`
}

func defaultConfigFile() configFile {
	return configFile{
		Backend:         types.BackendSQLite,
		PageSize:        catalog.DefaultPageSize,
		ImageMaxDim:     images.DefaultMaxDim,
		ImageQuality:    images.DefaultQuality,
		ListenAddr:      httpserver.DefaultListenAddr,
		LogLevel:        defaultLogLevel,
		AnalyzerTimeout: intake.DefaultAnalyzerTimeout.String(),
	}
}

// loadSettings reads config.yaml from configDir, creating the directory and
// a default file on first run. Values in a .env file next to it are loaded
// into the environment first, and SCRATCHBOOK_* variables override the file.
func loadSettings(configDir string) (settings, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return settings{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), ""); err != nil {
		return settings{}, fmt.Errorf("write default config: %w", err)
	}

	envPath := filepath.Join(configDir, envFileName)
	if _, err := os.Stat(envPath); err == nil {
		// godotenv never overrides variables already set in the process.
		if err := godotenv.Load(envPath); err != nil {
			return settings{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	def := defaultConfigFile()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyPageSize, def.PageSize)
	v.SetDefault(cfgKeyImageMaxDim, def.ImageMaxDim)
	v.SetDefault(cfgKeyImageQuality, def.ImageQuality)
	v.SetDefault(cfgKeyListenAddr, def.ListenAddr)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyAnalyzerTimeout, def.AnalyzerTimeout)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		Backend:         v.GetString(cfgKeyBackend),
		DataDir:         v.GetString(cfgKeyDataDir),
		PageSize:        v.GetInt(cfgKeyPageSize),
		ImageMaxDim:     v.GetInt(cfgKeyImageMaxDim),
		ImageQuality:    v.GetInt(cfgKeyImageQuality),
		ListenAddr:      v.GetString(cfgKeyListenAddr),
		LogLevel:        v.GetString(cfgKeyLogLevel),
		AnalyzerTimeout: v.GetDuration(cfgKeyAnalyzerTimeout),
	}
	if s.PageSize < 1 {
		return settings{}, userError(fmt.Errorf("%s must be positive, got %d", cfgKeyPageSize, s.PageSize))
	}
	return s, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile()
	cfg.DataDir = dataDir
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# scratchbook configuration; SCRATCHBOOK_<KEY> environment variables override these values.\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
