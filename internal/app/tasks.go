package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/patrickprogramme/transcriptor/internal/fetch"
	"github.com/patrickprogramme/transcriptor/internal/fsutil"
	"github.com/patrickprogramme/transcriptor/internal/media"
	"github.com/patrickprogramme/transcriptor/internal/subtitles"
	"github.com/patrickprogramme/transcriptor/pkg/model"
)

// prepareWorkDir retourne le répertoire de travail et sa fonction de
// nettoyage. Si work_dir est configuré il est créé et conservé ; sinon un
// dossier temporaire est créé et supprimé à la fin.
func (a *App) prepareWorkDir() (string, func(), error) {
	if a.cfg.WorkDir != "" {
		if err := os.MkdirAll(a.cfg.WorkDir, dirPerm); err != nil {
			return "", nil, fmt.Errorf("create work dir: %w", err)
		}
		return a.cfg.WorkDir, func() {}, nil
	}
	dir, err := os.MkdirTemp("", "transcriptor-*")
	if err != nil {
		return "", nil, fmt.Errorf("create temp work dir: %w", err)
	}
	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Warn().Str("dir", dir).Err(err).Msg("nettoyage du répertoire de travail impossible")
		}
	}, nil
}

// AcquireAsset rend la source disponible localement : un chemin local est
// utilisé sur place, une URL est téléchargée dans workDir.
func (a *App) AcquireAsset(ctx context.Context, source, workDir string) (*model.AudioAsset, error) {
	if !fetch.IsRemoteURL(source) {
		info, err := os.Stat(source)
		if err != nil {
			return nil, fmt.Errorf("fichier source introuvable : %w", err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("la source est un répertoire : %s", source)
		}
		return &model.AudioAsset{Path: source}, nil
	}

	name := fsutil.SanitizeFilename(baseName(source))
	ext := filepath.Ext(filepath.Base(source))
	if ext == "" {
		ext = ".audio"
	}
	dest := filepath.Join(workDir, name+ext)

	a.ui.PrintInfo(ctx, fmt.Sprintf("Téléchargement de %s...", source))
	if err := fetch.FetchToFile(ctx, source, dest, fetch.DefaultDownloadTimeout); err != nil {
		return nil, err
	}
	return &model.AudioAsset{Path: dest, Downloaded: true}, nil
}

// PreprocessAsset applique les étapes de préparation activées dans la
// config et retourne le chemin de l'audio prêt à découper.
func (a *App) PreprocessAsset(ctx context.Context, src, workDir string) (string, error) {
	var steps []media.Step
	if a.cfg.Preprocess.Convert {
		steps = append(steps, media.ConvertStep)
	}
	if a.cfg.Preprocess.Denoise {
		steps = append(steps, media.DenoiseStep)
	}
	if a.cfg.Preprocess.Normalize {
		steps = append(steps, media.NormalizeStep)
	}
	return a.media.ApplySteps(ctx, src, workDir, steps)
}

// SaveOutputs écrit les trois sorties dans outDir : transcript.txt,
// transcript.srt et le journal segments.json. Chaque écriture est atomique.
func (a *App) SaveOutputs(result *PipelineResult, outDir string) error {
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	txtPath := filepath.Join(outDir, "transcript.txt")
	if err := fsutil.WriteFileAtomic(txtPath, result.Transcript.Bytes(), filePerm); err != nil {
		return fmt.Errorf("write transcript.txt: %w", err)
	}

	srtPath := filepath.Join(outDir, "transcript.srt")
	if err := fsutil.WriteFileAtomic(srtPath, subtitles.RenderSRT(result.Track), filePerm); err != nil {
		return fmt.Errorf("write transcript.srt: %w", err)
	}

	journal, err := json.MarshalIndent(result.Records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal segments.json: %w", err)
	}
	journalPath := filepath.Join(outDir, "segments.json")
	if err := fsutil.WriteFileAtomic(journalPath, journal, filePerm); err != nil {
		return fmt.Errorf("write segments.json: %w", err)
	}
	return nil
}
