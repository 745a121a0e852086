package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/audio"
	"github.com/vovakirdan/bricks/internal/audio/speaker"
	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/games/breakout"
	"github.com/vovakirdan/bricks/internal/logging"
)

// loadConfig loads, adjusts and validates the configuration from the global
// flags.
func loadConfig() (config.BricksConfig, config.Source, error) {
	cfg, source, err := config.LoadBricks(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, source, err
		}
		if err := config.ApplyPreset(&cfg, p); err != nil {
			return cfg, source, err
		}
	}
	if flagMute {
		cfg.Audio.Muted = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// openLogger returns the logger and a function closing its file. When
// toStderr is set and no --log path was given, it logs to stderr.
func openLogger(toStderr bool) (*log.Logger, func(), error) {
	level := logging.Level(flagDebug)
	if toStderr && flagLog == "" {
		return logging.New(os.Stderr, level), func() {}, nil
	}

	path := flagLog
	if path == "" {
		path = logging.DefaultLogPath()
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level), func() { _ = f.Close() }, nil
}

// session bundles a running game with the resources it holds.
type session struct {
	game   *breakout.Game
	cfg    config.BricksConfig
	logger *log.Logger
	close  func()
}

// newSession builds the game with its audio and logging. The terminal
// frontend owns the TTY, so it logs to a file.
func newSession(rt core.RuntimeConfig, logToStderr bool) (*session, error) {
	cfg, source, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := openLogger(logToStderr)
	if err != nil {
		return nil, err
	}
	logger.Info("config loaded", "source", source, "preset", cfg.Difficulty.Preset, "fps", rt.TickRate)

	var out audio.Output = audio.Discard{}
	var spk *speaker.Output
	if spk, err = speaker.New(cfg.Audio.Volume, logger); err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
	} else {
		out = spk
	}
	cues := audio.NewLatch(out, cfg.Audio.Muted)

	game := breakout.New(cfg, rt,
		breakout.WithCues(cues),
		breakout.WithLogger(logger),
	)

	return &session{
		game:   game,
		cfg:    cfg,
		logger: logger,
		close: func() {
			if spk != nil {
				spk.Close()
			}
			wins, losses := game.RoundStats()
			st := cues.Stats()
			logger.Info("session ended", "score", game.Score(), "wins", wins, "losses", losses,
				"cues_played", st.Played, "cues_dropped", st.Dropped)
			closeLog()
		},
	}, nil
}

// fprintTable prints rows with the first column padded to a common width.
func fprintTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], len(c))
		}
	}

	line := func(cells []string) {
		fmt.Fprint(w, " ")
		for i, c := range cells {
			fmt.Fprintf(w, " %-*s", widths[i], c)
		}
		fmt.Fprintln(w)
	}

	line(header)
	dashes := make([]string, len(header))
	for i := range header {
		dashes[i] = fmt.Sprintf("%.*s", widths[i], "----------------------------------------")
	}
	line(dashes)
	for _, r := range rows {
		line(r)
	}
}
