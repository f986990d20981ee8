package media

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Step est une étape de préparation audio : elle produit les arguments
// ffmpeg transformant src en dst.
type Step struct {
	Name string
	Args func(src, dst string) []string
}

// ConvertStep ré-encode la source au format attendu par le moteur de
// transcription : WAV PCM 16 bits, mono, 16 kHz.
var ConvertStep = Step{
	Name: "conversion",
	Args: func(src, dst string) []string {
		return []string{"-y", "-i", src, "-ac", "1", "-ar", "16000", "-c:a", "pcm_s16le", dst}
	},
}

// DenoiseStep applique une réduction de bruit spectrale.
var DenoiseStep = Step{
	Name: "débruitage",
	Args: func(src, dst string) []string {
		return []string{"-y", "-i", src, "-af", "afftdn", dst}
	},
}

// NormalizeStep normalise le volume perçu (EBU R128).
var NormalizeStep = Step{
	Name: "normalisation",
	Args: func(src, dst string) []string {
		return []string{"-y", "-i", src, "-af", "loudnorm=I=-16:TP=-1.0:LRA=11", dst}
	},
}

// ApplySteps enchaîne les étapes dans l'ordre, chaque sortie intermédiaire
// étant écrite dans workDir. Le chemin du dernier fichier produit est
// retourné ; si steps est vide, src est retourné tel quel.
func (f *FFmpeg) ApplySteps(ctx context.Context, src, workDir string, steps []Step) (string, error) {
	current := src
	for i, step := range steps {
		dst := filepath.Join(workDir, fmt.Sprintf("prep_%d.wav", i+1))
		log.Info().Str("étape", step.Name).Str("sortie", dst).Msg("préparation audio")
		if err := f.run(ctx, step.Args(current, dst)...); err != nil {
			return "", fmt.Errorf("étape %s : %w", step.Name, err)
		}
		current = dst
	}
	return current, nil
}
