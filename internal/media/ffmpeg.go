// Package media encapsule les outils externes de manipulation audio
// (ffmpeg et ffprobe) : conversion au format attendu par le moteur de
// transcription, mesure de durée et découpe en segments.
package media

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// FFmpeg regroupe les deux binaires utilisés par le pipeline.
// Les noms sont configurables pour pointer vers un binaire hors PATH.
type FFmpeg struct {
	Name      string // binaire ffmpeg
	ProbeName string // binaire ffprobe
}

// NewFFmpeg construit le wrapper avec des noms par défaut si absents.
func NewFFmpeg(name, probeName string) *FFmpeg {
	if name == "" {
		name = "ffmpeg"
	}
	if probeName == "" {
		probeName = "ffprobe"
	}
	return &FFmpeg{Name: name, ProbeName: probeName}
}

// CheckBinary vérifie que ffmpeg et ffprobe sont résolubles dans le PATH.
func (f *FFmpeg) CheckBinary() error {
	if _, err := exec.LookPath(f.Name); err != nil {
		return fmt.Errorf("binaire %s introuvable : %w", f.Name, err)
	}
	if _, err := exec.LookPath(f.ProbeName); err != nil {
		return fmt.Errorf("binaire %s introuvable : %w", f.ProbeName, err)
	}
	return nil
}

// run exécute ffmpeg avec les arguments donnés. En cas d'échec, la sortie
// combinée est incluse dans l'erreur pour le diagnostic.
func (f *FFmpeg) run(ctx context.Context, args ...string) error {
	log.Debug().Str("bin", f.Name).Strs("args", args).Msg("exécution ffmpeg")
	cmd := exec.CommandContext(ctx, f.Name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s a échoué : %w\nsortie : %s", f.Name, err, string(out))
	}
	return nil
}
