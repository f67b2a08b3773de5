package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "camdash"

// TokenEnv is read when archive.token is empty.
const TokenEnv = "DROPBOX_ACCESS_TOKEN"

type Config struct {
	CamerasFile string `koanf:"cameras_file"`
	Icons       string `koanf:"icons"` // "nerd", "unicode", or "none"

	Photos  PhotosConfig  `koanf:"photos"`
	Archive ArchiveConfig `koanf:"archive"`
	Player  PlayerConfig  `koanf:"player"`
	Log     LogConfig     `koanf:"log"`
	Power   PowerConfig   `koanf:"power"`
}

// PhotosConfig describes the local photo archive.
type PhotosConfig struct {
	Root                string `koanf:"root"`
	Columns             int    `koanf:"columns"`
	SlideshowIntervalMS int    `koanf:"slideshow_interval_ms"`
}

// ArchiveConfig describes the remote clip archive.
type ArchiveConfig struct {
	Provider    string `koanf:"provider"` // "dropbox" or "dir"
	Root        string `koanf:"root"`     // remote root, e.g. "/motion_images"
	Dir         string `koanf:"dir"`      // local mirror used by the "dir" provider
	Token       string `koanf:"token"`
	DownloadDir string `koanf:"download_dir"`
	Columns     int    `koanf:"columns"`
}

// PlayerConfig configures the external video renderer.
type PlayerConfig struct {
	Command            string   `koanf:"command"`
	Args               []string `koanf:"args"`
	StreamRetryDelayMS int      `koanf:"stream_retry_delay_ms"`
	StreamMaxRetries   int      `koanf:"stream_max_retries"`
}

type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"` // "debug", "info", "warn", "error"
}

// PowerConfig configures the GPIO shutdown watcher.
type PowerConfig struct {
	Chip          string `koanf:"chip"`
	Line          int    `koanf:"line"`
	StartupDelayS int    `koanf:"startup_delay_s"`
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files override earlier
// ones and missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.CamerasFile == "" {
		cfg.CamerasFile = filepath.Join(xdg.ConfigHome, appName, "cameras.txt")
	}
	cfg.CamerasFile = expandPath(cfg.CamerasFile)
	cfg.Photos.Root = expandPath(cfg.Photos.Root)
	cfg.Archive.Dir = expandPath(cfg.Archive.Dir)
	cfg.Archive.DownloadDir = expandPath(cfg.Archive.DownloadDir)
	cfg.Log.File = expandPath(cfg.Log.File)

	if cfg.Archive.Token == "" {
		cfg.Archive.Token = os.Getenv(TokenEnv)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/camdash/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasPhotos reports whether a local photo archive is configured.
func (c *Config) HasPhotos() bool {
	return c.Photos.Root != ""
}

// HasArchive reports whether the remote clip archive can be reached.
func (c *Config) HasArchive() bool {
	switch c.Archive.Provider {
	case "dir":
		return c.Archive.Dir != ""
	case "", "dropbox":
		return c.Archive.Token != ""
	default:
		return false
	}
}

// GetPhotosConfig returns the photo archive configuration with defaults applied.
func (c *Config) GetPhotosConfig() PhotosConfig {
	cfg := c.Photos
	if cfg.Columns <= 0 {
		cfg.Columns = 4
	}
	if cfg.SlideshowIntervalMS <= 0 {
		cfg.SlideshowIntervalMS = 3000
	}
	return cfg
}

// SlideshowInterval is the autoplay advance period.
func (c *Config) SlideshowInterval() time.Duration {
	return time.Duration(c.GetPhotosConfig().SlideshowIntervalMS) * time.Millisecond
}

// GetArchiveConfig returns the archive configuration with defaults applied.
func (c *Config) GetArchiveConfig() ArchiveConfig {
	cfg := c.Archive
	if cfg.Provider == "" {
		cfg.Provider = "dropbox"
	}
	if cfg.Root == "" {
		cfg.Root = "/motion_images"
	}
	if cfg.Columns <= 0 {
		cfg.Columns = 4
	}
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = filepath.Join(xdg.CacheHome, appName, "clips")
	}
	return cfg
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	if cfg.Command == "" {
		cfg.Command = "mpv"
		if len(cfg.Args) == 0 {
			cfg.Args = []string{"--fs", "--really-quiet", "--no-terminal"}
		}
	}
	if cfg.StreamRetryDelayMS <= 0 {
		cfg.StreamRetryDelayMS = 5000
	}
	if cfg.StreamMaxRetries <= 0 {
		cfg.StreamMaxRetries = 1000
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}

// GetPowerConfig returns the shutdown watcher configuration with defaults applied.
func (c *Config) GetPowerConfig() PowerConfig {
	cfg := c.Power
	if cfg.Chip == "" {
		cfg.Chip = "gpiochip0"
	}
	if cfg.Line <= 0 {
		cfg.Line = 17
	}
	if cfg.StartupDelayS < 0 {
		cfg.StartupDelayS = 0
	} else if cfg.StartupDelayS == 0 {
		cfg.StartupDelayS = 120
	}
	return cfg
}
