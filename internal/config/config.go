// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvFormat     = "AUDOUT_FORMAT"
	EnvOutput     = "AUDOUT_OUTPUT"
	EnvSampleRate = "AUDOUT_SAMPLE_RATE"
	EnvFrequency  = "AUDOUT_FREQUENCY"
	EnvDuration   = "AUDOUT_DURATION"
	EnvDebug      = "AUDOUT_DEBUG"
)

// StdoutPath selects standard output as the destination.
const StdoutPath = "-"

var ErrInvalidValue = errors.New("invalid configuration value")

type Config struct {
	Format     string
	Output     string
	SampleRate int
	Frequency  float64
	Duration   time.Duration
	Debug      bool
}

func Default() Config {
	return Config{
		Format:     "wav",
		Output:     StdoutPath,
		SampleRate: 8000,
		Frequency:  440,
		Duration:   time.Second,
	}
}

// Load starts from Default, applies values from the given .env files and then
// from the process environment, which takes precedence. Missing files are
// skipped. Values are parsed but not range checked; call Validate once all
// overrides are applied.
func Load(files ...string) (Config, error) {
	values := make(map[string]string)

	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		env, err := godotenv.Read(file)
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", file, err)
		}

		for k, v := range env {
			values[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	cfg := Default()

	if v, ok := lookup(EnvFormat); ok && v != "" {
		cfg.Format = v
	}

	if v, ok := lookup(EnvOutput); ok && v != "" {
		cfg.Output = v
	}

	if v, ok := lookup(EnvSampleRate); ok {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSampleRate, v)
		}
		cfg.SampleRate = rate
	}

	if v, ok := lookup(EnvFrequency); ok {
		freq, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvFrequency, v)
		}
		cfg.Frequency = freq
	}

	if v, ok := lookup(EnvDuration); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvDuration, v)
		}
		cfg.Duration = d
	}

	if v, ok := lookup(EnvDebug); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvDebug, v)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Format == "":
		return fmt.Errorf("%w: empty format", ErrInvalidValue)
	case c.Output == "":
		return fmt.Errorf("%w: empty output", ErrInvalidValue)
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidValue, c.SampleRate)
	case c.Frequency < 0:
		return fmt.Errorf("%w: frequency %v", ErrInvalidValue, c.Frequency)
	case c.Duration < 0:
		return fmt.Errorf("%w: duration %v", ErrInvalidValue, c.Duration)
	}

	return nil
}

// ToStdout reports whether Output selects standard output.
func (c Config) ToStdout() bool { return c.Output == StdoutPath }
