package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"log/slog"
	"slices"

	"github.com/katalvlaran/bluenoise/config"
	"github.com/katalvlaran/bluenoise/poisson"
	"github.com/katalvlaran/bluenoise/spacing"
	"github.com/katalvlaran/bluenoise/torus"
)

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.FromArgs("bluenoise", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("invalid configuration", "err", err)

		return 1
	}

	lvl, _ := cfg.LogLevel() // validated by FromArgs
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
	log.Debug("starting", "config", cfg)

	buf := bufio.NewWriter(stdout)
	out := newPointWriter(cfg.Output.Format, buf)

	for frame := 0; frame < cfg.Output.Frames; frame++ {
		seed := frameSeed(cfg.Sampler.Seed, frame)
		pts, state, err := generate(cfg.Sampler, seed, cfg.Output.Count)
		if err != nil {
			log.Error("building sampler", "frame", frame, "err", err)

			return 1
		}
		if err := out.WriteFrame(frame, pts); err != nil {
			log.Error("writing points", "frame", frame, "err", err)

			return 1
		}
		log.Debug("frame done", "frame", frame, "seed", seed, "points", len(pts), "state", state.String())

		if cfg.Output.Stats {
			logSpacing(log, frame, pts, cfg.Sampler)
		}
	}

	if err := buf.Flush(); err != nil {
		log.Error("flushing output", "err", err)

		return 1
	}

	return 0
}

// frameSeed returns the seed for frame i: the configured seed for frame 0,
// a SplitMix64-derived stream for later frames.
func frameSeed(seed uint64, frame int) uint64 {
	if frame == 0 {
		return seed
	}

	return poisson.DeriveSeed(seed, uint64(frame))
}

// generate builds one sampler and pulls count points, or every point when
// count is 0.
func generate(sc config.SamplerConfig, seed uint64, count int) ([]torus.Point, poisson.State, error) {
	s, err := poisson.New(sc.Width, sc.Height, sc.MinDistance,
		poisson.WithSeed(seed),
		poisson.WithSamples(uint32(sc.Samples)),
	)
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return slices.Collect(s.All()), s.State(), nil
	}

	return s.Take(count), s.State(), nil
}

// logSpacing logs the nearest-neighbour summary for one frame.
func logSpacing(log *slog.Logger, frame int, pts []torus.Point, sc config.SamplerConfig) {
	d := torus.Domain{Width: sc.Width, Height: sc.Height}
	sum, err := spacing.Summarize(pts, d, sc.MinDistance)
	if errors.Is(err, spacing.ErrTooFewPoints) {
		log.Info("spacing skipped", "frame", frame, "points", len(pts))

		return
	}
	if err != nil {
		log.Warn("spacing failed", "frame", frame, "err", err)

		return
	}
	if sum.Violations > 0 {
		log.Warn("spacing violations", "frame", frame, "spacing", sum)

		return
	}
	log.Info("spacing", "frame", frame, "spacing", sum)
}
