package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/patrickprogramme/transcriptor/internal/app"
	"github.com/patrickprogramme/transcriptor/internal/assets"
	"github.com/patrickprogramme/transcriptor/internal/bootstrap"
	"github.com/patrickprogramme/transcriptor/internal/config"
	"github.com/patrickprogramme/transcriptor/internal/ui"
)

func main() {
	flags := parseFlags()

	// journalisation : console lisible, debug si -verbose
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flags.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("impossible de déterminer le chemin de l'executable")
	} else {
		binDir = filepath.Dir(exePath)
		fmt.Printf("Lancement depuis: %s\n", exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "transcriptor.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "transcriptor.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Warn().Err(err).Msg("EnsureConfigPresent")
	}

	// charger la config depuis flags.ConfigPath (qui pointe vers binDir/transcriptor.yaml si par défaut)
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}

	// avertissements non fatals sur la présence de whisper-cli
	if warnings, err := cfg.ValidateWhisperPresence(); err != nil {
		log.Fatal().Err(err).Msg("config whisper")
	} else {
		for _, w := range warnings {
			log.Warn().Msg(w)
		}
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags)
	if err := a.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("app run")
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "transcriptor.yaml", "path to config file")
	flag.StringVar(&f.Source, "source", "", "fichier audio local ou URL http(s) (optionnel)")
	flag.StringVar(&f.Model, "model", "", "modèle whisper (tiny, base, small, medium, large-v3...)")
	flag.StringVar(&f.Language, "lang", "", "langue de l'audio (code ISO 639-1)")
	flag.StringVar(&f.WhisperPath, "whisper-path", "", "répertoire contenant l'exécutable whisper-cli")
	flag.BoolVar(&f.Verbose, "verbose", false, "journalisation détaillée")
	flag.Parse()
	return f
}
