package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/livepoll/ids"
)

const (
	DefaultPort           = 3318
	DefaultMaxTextLength  = 500
	DefaultStreamInterval = time.Second
	DefaultEnvFile        = ".env"
)

type Config struct {
	Port           int
	IDLength       int
	IDFormat       string
	MaxTextLength  int
	StreamInterval time.Duration
	EnvFile        string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("livepoll", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.IntVar(&cfg.IDLength, "id-length", 0, "Length of generated poll and item ids")
	flags.StringVar(&cfg.IDFormat, "id-format", "", "Id format: uuid or hex")
	flags.IntVar(&cfg.MaxTextLength, "max-text", 0, "Maximum length of titles, descriptions and item text")
	flags.DurationVar(&cfg.StreamInterval, "stream-interval", 0, "How often result streams check for changes")
	flags.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Optional dotenv file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	var err error
	if cfg.Port == 0 {
		if cfg.Port, err = envInt("PORT", DefaultPort); err != nil {
			return Config{}, err
		}
	}
	if cfg.IDLength == 0 {
		if cfg.IDLength, err = envInt("ID_LENGTH", ids.DefaultLength); err != nil {
			return Config{}, err
		}
	}
	if cfg.IDFormat == "" {
		cfg.IDFormat = os.Getenv("ID_FORMAT")
		if cfg.IDFormat == "" {
			cfg.IDFormat = ids.FormatUUID
		}
	}
	if cfg.MaxTextLength == 0 {
		if cfg.MaxTextLength, err = envInt("MAX_TEXT_LENGTH", DefaultMaxTextLength); err != nil {
			return Config{}, err
		}
	}
	if cfg.StreamInterval == 0 {
		cfg.StreamInterval = DefaultStreamInterval
		if s := os.Getenv("STREAM_INTERVAL"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid STREAM_INTERVAL env variable")
			}
			cfg.StreamInterval = d
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if _, err := ids.New(c.IDFormat, c.IDLength); err != nil {
		return err
	}
	if c.MaxTextLength < 1 {
		return errors.New("max text length must be positive")
	}
	if c.StreamInterval <= 0 {
		return errors.New("stream interval must be positive")
	}
	return nil
}

// loadEnvFile exports variables from path without overriding ones already
// set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func envInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
