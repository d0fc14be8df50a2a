package main

import (
	"fmt"
	"log/slog"
	"os"

	"neoncity/internal/game"
	"neoncity/internal/scene"
)

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadSettings returns the defaults when path is empty.
func loadSettings(path string) (scene.Settings, error) {
	if path == "" {
		return scene.DefaultSettings(), nil
	}
	s, err := scene.LoadSettings(path)
	if err != nil {
		return s, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

func runInteractive(configPath string) error {
	s, err := loadSettings(configPath)
	if err != nil {
		return err
	}
	seed := s.ResolveSeed()
	st, err := scene.NewState(s, seed)
	if err != nil {
		return err
	}
	logger := slog.Default()
	logger.Info("starting", "seed", seed, "density", s.Density, "noise", s.Noise, "themes", len(st.Themes))
	return game.Run(st, logger)
}

func runGenerate(s scene.Settings) error {
	seed := s.ResolveSeed()
	st, err := scene.NewState(s, seed)
	if err != nil {
		return err
	}
	st.Regenerate()
	if st.City.Short() {
		slog.Warn("city placed fewer buildings than requested",
			"requested", st.City.Requested, "placed", len(st.City.Buildings), "attempts", st.City.Attempts)
	}
	printCityReport(st)
	return nil
}

func runValidate(path string) error {
	s, err := scene.LoadSettings(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: OK (density %d, noise %s, %d themes)\n", path, s.Density, s.Noise, len(s.ThemeList()))
	return nil
}
