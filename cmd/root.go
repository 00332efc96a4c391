package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"ainews-journalist/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	appCfg  config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ainews-journalist",
	Short: "AI news document generator",
	Long:  "Collects AI-related Hacker News stories into ai_news_data.json, falling back to local content when needed.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
}

// envKeys may be set from the environment even when absent from the config
// file. Keep in sync with the mapstructure tags of config.Config.
var envKeys = []string{
	"app.log_level", "app.log_format",
	"hackernews.base_api", "hackernews.max_retries", "hackernews.timeout", "hackernews.backoff_base",
	"output.path", "output.markdown_path", "output.title",
	"redis.enabled", "redis.addr", "redis.username", "redis.password", "redis.db", "redis.key",
	"openai.api_key", "openai.model", "openai.base_url", "openai.language",
	"server.addr", "server.refresh_interval",
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error reading .env: %v\n", err)
	}

	cfg, err := loadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	appCfg = cfg
	setupLogger(appCfg.App)
}

// loadConfig reads the config file (optional unless file is set), overlays
// AINEWS_* environment variables and fills defaults.
func loadConfig(v *viper.Viper, file string) (config.Config, error) {
	var cfg config.Config
	v.SetEnvPrefix("AINEWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ainews-journalist")
		v.AddConfigPath("configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return cfg, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.FillDefaults()
	return cfg, nil
}

func setupLogger(app config.AppConfig) {
	opts := &slog.HandlerOptions{Level: app.SlogLevel()}
	var h slog.Handler
	if strings.EqualFold(app.LogFormat, "json") {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}
