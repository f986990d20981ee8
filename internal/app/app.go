// Package app orchestre le pipeline complet de transcription : acquisition
// de la source audio, préparation et découpe, transcription segment par
// segment, fusion des sous-titres et écriture des sorties.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/transcriptor/internal/clipboard"
	"github.com/patrickprogramme/transcriptor/internal/config"
	"github.com/patrickprogramme/transcriptor/internal/fetch"
	"github.com/patrickprogramme/transcriptor/internal/fsutil"
	"github.com/patrickprogramme/transcriptor/internal/media"
	"github.com/patrickprogramme/transcriptor/internal/ui"
	"github.com/patrickprogramme/transcriptor/internal/whisper"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrAllSegmentsFailed signale qu'aucun segment n'a pu être transcrit.
var ErrAllSegmentsFailed = errors.New("aucun segment transcrit")

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath  string
	Source      string
	Model       string
	Language    string
	WhisperPath string
	Verbose     bool
}

// App orchestre les différentes dépendances (UI, moteur whisper, ffmpeg...)
type App struct {
	cfg    *config.Config
	ui     ui.Interface
	flags  *CLIFlags
	engine whisper.Interface // initialisé dans Run, injectable pour les tests
	media  *media.FFmpeg
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	return &App{
		cfg:   cfg,
		ui:    uiClient,
		flags: flags,
	}
}

// Run exécute le flux principal : vérifications, acquisition, préparation,
// découpe, transcription séquentielle et sauvegarde.
func (a *App) Run(ctx context.Context) error {
	// Récupération de la source : priorité flag > clipboard > prompt
	source := a.flags.Source
	if source == "" {
		s, err := a.ui.GetSource(ctx)
		if err != nil {
			return fmt.Errorf("get source: %w", err)
		}
		source = s
	}

	// surcharge des flags CLI sur la config
	if a.flags.Model != "" {
		a.cfg.Model = a.flags.Model
	}
	if a.flags.Language != "" {
		a.cfg.Language = strings.ToLower(a.flags.Language)
	}
	if a.flags.WhisperPath != "" {
		a.cfg.Whisper.Path = a.flags.WhisperPath
		a.cfg.ResolveWhisperPath()
	}

	// ffmpeg/ffprobe doivent être présents avant tout travail
	if a.media == nil {
		a.media = media.NewFFmpeg(a.cfg.FFmpeg.Name, a.cfg.FFmpeg.ProbeName)
	}
	if err := a.media.CheckBinary(); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}

	// modèle : présence locale, téléchargement si absent
	modelPath, err := whisper.EnsureModel(a.cfg.ModelsDir, a.cfg.Model, func(url, dest string) error {
		a.ui.PrintInfo(ctx, fmt.Sprintf("Téléchargement du modèle %s...", a.cfg.Model))
		return fetch.FetchToFile(ctx, url, dest, fetch.DefaultDownloadTimeout)
	})
	if err != nil {
		return fmt.Errorf("modèle: %w", err)
	}

	// moteur de transcription, sur le chemin résolu par la config
	a.cfg.ResolveWhisperPath()
	if a.engine == nil {
		a.engine = whisper.New(a.cfg.Whisper.ResolvedPath, whisper.Config{
			ModelPath:   modelPath,
			Language:    a.cfg.Language,
			Temperature: a.cfg.Whisper.Temperature,
			PostProcess: a.cfg.Whisper.PostProcess,
		})
	}
	if err := a.engine.CheckBinary(); err != nil {
		return fmt.Errorf("whisper: %w", err)
	}

	// répertoire de travail pour les fichiers intermédiaires
	workDir, cleanupWork, err := a.prepareWorkDir()
	if err != nil {
		return err
	}
	defer cleanupWork()

	// acquisition de la source (copie locale ou téléchargement)
	asset, err := a.AcquireAsset(ctx, source, workDir)
	if err != nil {
		return fmt.Errorf("acquisition: %w", err)
	}
	if asset.Downloaded {
		// la source téléchargée est un intermédiaire, pas une sortie
		defer os.Remove(asset.Path)
	}

	// préparation audio (conversion, débruitage, normalisation)
	prepared, err := a.PreprocessAsset(ctx, asset.Path, workDir)
	if err != nil {
		return fmt.Errorf("préparation audio: %w", err)
	}

	// mesure de durée et plan de découpe
	duration, err := a.media.ProbeDuration(ctx, prepared)
	if err != nil {
		return fmt.Errorf("mesure de durée: %w", err)
	}
	asset.DurationSeconds = duration

	plan, err := media.PlanSegments(duration, a.cfg.ChunkSeconds)
	if err != nil {
		return fmt.Errorf("plan de découpe: %w", err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Audio de %.1f s, %d segment(s) de %.0f s", duration, len(plan), a.cfg.ChunkSeconds))

	segments, err := a.media.Split(ctx, prepared, workDir, plan)
	if err != nil {
		return fmt.Errorf("découpe: %w", err)
	}
	// zéro segment pour un asset non vide est une erreur de découpe, pas
	// un échec de transcription
	if len(segments) == 0 {
		return fmt.Errorf("découpe: %w", media.ErrNoSegments)
	}

	// transcription séquentielle
	result, err := a.TranscribeSegments(ctx, segments)
	if err != nil {
		return err
	}
	if result.Succeeded == 0 {
		return fmt.Errorf("%w (%d segment(s) en échec)", ErrAllSegmentsFailed, result.Total)
	}

	// sauvegarde des sorties
	outDir := filepath.Join(a.cfg.OutputDir, "transcripts", fsutil.SanitizeFilename(baseName(source)))
	if err := a.SaveOutputs(result, outDir); err != nil {
		return fmt.Errorf("sauvegarde: %w", err)
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("✅ Transcription écrite dans %s", outDir))

	// copie dans le presse-papier
	if a.cfg.CopyToClipboard && result.Transcript.Len() > 0 {
		if err := clipboard.WriteAll(result.Transcript.String()); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie presse-papier impossible: %v", err))
		} else {
			a.ui.PrintInfo(ctx, "Transcription copiée dans le presse-papier.")
		}
	}

	if result.Succeeded < result.Total {
		a.ui.PrintInfo(ctx, fmt.Sprintf("⚠️  %d/%d segment(s) transcrits, voir segments.json", result.Succeeded, result.Total))
	} else {
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ %d/%d segments transcrits", result.Succeeded, result.Total))
	}
	return nil
}

// baseName retourne le nom de la source sans répertoire ni extension,
// utilisable pour nommer le dossier de sortie.
func baseName(source string) string {
	b := filepath.Base(strings.TrimRight(source, "/"))
	if i := strings.IndexAny(b, "?#"); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSuffix(b, filepath.Ext(b))
}
