// SPDX-License-Identifier: EPL-2.0

// Command audout renders a sine tone as raw PCM or WAVE to a file or stdout.
//
// Usage:
//
//	audout [-format wav|raw] [-out path|-] [-rate Hz] [-freq Hz] [-duration 1s] [-probe] [-debug]
//
// Defaults come from AUDOUT_* environment variables or a .env file (see -env);
// flags override both. Logs go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audout"
	"github.com/ik5/audout/formats/wav"
	"github.com/ik5/audout/internal/config"
	"github.com/ik5/audout/internal/logging"
	"github.com/ik5/audout/internal/tone"
	"github.com/ik5/audout/sink"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "audout:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("audout", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	envFile := fs.String("env", ".env", "optional .env file with AUDOUT_* settings")
	format := fs.String("format", def.Format, "output format: "+strings.Join(audout.Formats(), ", "))
	out := fs.String("out", def.Output, `output file, or "-" for stdout`)
	rate := fs.Int("rate", def.SampleRate, "sample rate in Hz")
	freq := fs.Float64("freq", def.Frequency, "tone frequency in Hz")
	duration := fs.Duration("duration", def.Duration, "tone duration")
	debug := fs.Bool("debug", def.Debug, "enable debug logging")
	probe := fs.Bool("probe", false, "read WAVE files back and log the parsed header")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}

	// explicit flags win over the environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "out":
			cfg.Output = *out
		case "rate":
			cfg.SampleRate = *rate
		case "freq":
			cfg.Frequency = *freq
		case "duration":
			cfg.Duration = *duration
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(stderr, cfg.Debug)

	samples := tone.Sine(cfg.SampleRate, cfg.Frequency, cfg.Duration, tone.DefaultAmplitude)
	log.WithFields(logrus.Fields{
		"rate":     cfg.SampleRate,
		"freq":     cfg.Frequency,
		"duration": cfg.Duration,
		"samples":  len(samples),
	}).Debug("generated tone")

	r, err := audout.Render(cfg.Format, samples, cfg.SampleRate)
	if err != nil {
		return err
	}

	var s sink.Sink
	dest := cfg.Output
	if cfg.ToStdout() {
		s = sink.NewStreamSink(stdout)
		dest = "stdout"
	} else {
		s = sink.NewFileSink(cfg.Output)
	}

	start := time.Now()
	if err := s.Write(r); err != nil {
		return fmt.Errorf("%s: %w", dest, err)
	}

	log.WithFields(logrus.Fields{
		"format":  cfg.Format,
		"dest":    dest,
		"header":  len(r.Header()),
		"payload": len(r.Buffer()),
		"took":    time.Since(start),
	}).Info("rendered")

	if *probe && !cfg.ToStdout() && r.Header() != nil {
		return probeFile(log, cfg.Output)
	}

	return nil
}

func probeFile(log *logrus.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	info, err := wav.Probe(f)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"rate":      info.Format.SampleRate,
		"channels":  info.Format.NumChannels,
		"bits":      info.BitDepth,
		"byte_rate": info.ByteRate,
	}).Info("probed")

	return nil
}
