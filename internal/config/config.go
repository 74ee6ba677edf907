package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cognivore/cube-with-archive/internal/cubecobra"
)

const EnvPrefix = "CUBE_WITH_ARCHIVE"

// ErrHelp is returned by Load when -h or --help was given.
var ErrHelp = pflag.ErrHelp

type Config struct {
	BaseURL     string
	OutDir      string
	PresetsPath string
	XLSXPath    string
	UserAgent   string
	Timeout     time.Duration
	LogLevel    string
	LogPretty   bool

	// Args holds the positional arguments: workflow name, then cube id.
	Args []string
}

type binding struct {
	key, flag string
}

var bindings = []binding{
	{"base_url", "base-url"},
	{"out_dir", "out-dir"},
	{"presets", "presets"},
	{"xlsx", "xlsx"},
	{"user_agent", "user-agent"},
	{"timeout", "timeout"},
	{"log_level", "log-level"},
	{"log_pretty", "log-pretty"},
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("cube_with_archive", pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are returned, not printed

	fs.String("config", "", "path to an optional config yaml")
	fs.String("base-url", cubecobra.DefaultBaseURL, "CubeCobra base URL")
	fs.String("out-dir", ".", "directory for <cube-id>.txt")
	fs.String("presets", "", "yaml file with extra or overriding pack layout presets")
	fs.String("xlsx", "", "also write a catalog workbook to this path (rema only)")
	fs.String("user-agent", "cube-with-archive", "User-Agent header for CubeCobra requests")
	fs.Duration("timeout", 25*time.Second, "HTTP timeout for the download")
	fs.String("log-level", "info", "debug|info|warn|error|off")
	fs.Bool("log-pretty", true, "human readable logs on stderr")
	return fs
}

// Usage describes the accepted flags.
func Usage() string {
	var b strings.Builder
	b.WriteString("usage: cube_with_archive [flags] its|IntoTheStory\n")
	b.WriteString("       cube_with_archive [flags] rema|RemasteringMagic <cube-id>\n\nflags:\n")
	b.WriteString(newFlagSet().FlagUsages())
	return b.String()
}

// Load resolves settings with precedence flags > environment
// (CUBE_WITH_ARCHIVE_<KEY>) > config file > defaults.
func Load(args []string) (Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	for _, b := range bindings {
		if err := v.BindPFlag(b.key, fs.Lookup(b.flag)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", b.flag, err)
		}
	}

	configPath, _ := fs.GetString("config")
	if err := readConfigFile(v, strings.TrimSpace(configPath)); err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:     strings.TrimSpace(v.GetString("base_url")),
		OutDir:      strings.TrimSpace(v.GetString("out_dir")),
		PresetsPath: strings.TrimSpace(v.GetString("presets")),
		XLSXPath:    strings.TrimSpace(v.GetString("xlsx")),
		UserAgent:   strings.TrimSpace(v.GetString("user_agent")),
		Timeout:     v.GetDuration("timeout"),
		LogLevel:    strings.TrimSpace(v.GetString("log_level")),
		LogPretty:   v.GetBool("log_pretty"),
		Args:        fs.Args(),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = cubecobra.DefaultBaseURL
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("invalid timeout %s (must be positive)", cfg.Timeout)
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config yaml %s: %w", path, err)
	}
	return nil
}
