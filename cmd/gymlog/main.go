package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/nhle/gymlog/internal/app"
	"github.com/nhle/gymlog/internal/logging"
	"github.com/nhle/gymlog/internal/model"
	"github.com/nhle/gymlog/internal/store"
)

func main() {
	configPath := flag.String("config", model.DefaultConfigPath(),
		"path to the config file")
	flag.Parse()

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.File, cfg.Log.Level)
	logrus.WithField("db", cfg.Database.Path).Info("starting gymlog")

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "creating data directory: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		logrus.WithError(err).Error("opening store")
		fmt.Fprintf(os.Stderr, "opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	p := tea.NewProgram(app.New(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logrus.WithError(err).Error("program exited with error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
