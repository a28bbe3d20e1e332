// Package config resolves host settings from defaults, a .env file, CHOMP_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/chomp/level"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "CHOMP_"

// Config holds the settings shared by the hosts.
type Config struct {
	Scale    float64
	TPS      int
	Level    string
	DB       string
	Player   string
	Record   string
	Replay   string
	Debug    bool
	Mute     bool
	Frames   int
	Duration time.Duration
	Seed     uint64
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Scale:  1,
		TPS:    60,
		Level:  "classic",
		DB:     "chomp.db",
		Player: os.Getenv("USER"),
		Frames: 100000,
		Seed:   1,
	}
}

// Interval is the duration of one frame at the configured rate.
func (c Config) Interval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// LoadLevel resolves the Level setting: "classic" is built in, anything else
// is a YAML file.
func (c Config) LoadLevel() (*level.Level, error) {
	if c.Level == "" || c.Level == "classic" {
		return level.Classic(), nil
	}
	return level.LoadFile(c.Level)
}

// Load resolves the configuration for the command called name. envFiles are
// read in order if they exist; process environment variables win over them.
func Load(name string, args []string, envFiles ...string) (Config, error) {
	return LoadFlags(name, args, nil, envFiles...)
}

// LoadFlags is Load for commands with flags of their own; extra registers
// them on the shared flag set before parsing.
func LoadFlags(name string, args []string, extra func(*flag.FlagSet), envFiles ...string) (Config, error) {
	cfg := Default()

	env, err := readEnvFiles(envFiles)
	if err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return cfg, err
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Window scale factor.")
	flags.IntVar(&cfg.TPS, "tps", cfg.TPS, "Frames per second.")
	flags.StringVar(&cfg.Level, "level", cfg.Level, "Level to play: \"classic\" or a YAML file.")
	flags.StringVar(&cfg.DB, "db", cfg.DB, "Scoreboard database path; empty disables it.")
	flags.StringVar(&cfg.Player, "player", cfg.Player, "Name recorded on the scoreboard.")
	flags.StringVar(&cfg.Record, "record", cfg.Record, "Write a replay of the session to this file.")
	flags.StringVar(&cfg.Replay, "replay", cfg.Replay, "Play back a replay file instead of taking input.")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the debug overlay.")
	flags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound.")
	flags.IntVar(&cfg.Frames, "frames", cfg.Frames, "Frames to simulate in headless runs.")
	flags.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Wall-clock limit for headless runs; zero means no limit.")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for generated input.")
	if extra != nil {
		extra(flags)
	}
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the hosts cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", c.Frames))
	}
	if c.Record != "" && c.Replay != "" {
		errs = append(errs, errors.New("record and replay are mutually exclusive"))
	}
	return errors.Join(errs...)
}

func readEnvFiles(files []string) (map[string]string, error) {
	env := make(map[string]string)
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	return env, nil
}

func (c *Config) applyEnv(file map[string]string) error {
	lookup := func(key string) (string, bool) {
		key = EnvPrefix + key
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	var errs []error
	bad := func(key string, err error) {
		errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
	}

	if v, ok := lookup("SCALE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			bad("SCALE", err)
		}
		c.Scale = f
	}
	if v, ok := lookup("TPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			bad("TPS", err)
		}
		c.TPS = n
	}
	if v, ok := lookup("FRAMES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			bad("FRAMES", err)
		}
		c.Frames = n
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			bad("SEED", err)
		}
		c.Seed = n
	}
	if v, ok := lookup("DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			bad("DURATION", err)
		}
		c.Duration = d
	}
	if v, ok := lookup("DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			bad("DEBUG", err)
		}
		c.Debug = b
	}
	if v, ok := lookup("MUTE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			bad("MUTE", err)
		}
		c.Mute = b
	}
	for key, dst := range map[string]*string{
		"LEVEL":  &c.Level,
		"DB":     &c.DB,
		"PLAYER": &c.Player,
		"RECORD": &c.Record,
		"REPLAY": &c.Replay,
	} {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	return errors.Join(errs...)
}
