package whisper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// New construit le wrapper. bin est le chemin résolu du binaire ; un nom nu
// sera cherché dans le PATH au moment de l'exécution.
func New(bin string, cfg Config) *Whisper {
	if bin == "" {
		bin = "whisper-cli"
	}
	return &Whisper{Bin: bin, Config: cfg}
}

// CheckBinary vérifie que le binaire du moteur est présent et que le
// modèle configuré existe sur disque. Un Bin contenant un séparateur de
// chemin est testé tel quel, un nom nu passe par le PATH.
func (w *Whisper) CheckBinary() error {
	if strings.ContainsRune(w.Bin, os.PathSeparator) || strings.ContainsRune(w.Bin, '/') {
		info, err := os.Stat(w.Bin)
		if err != nil {
			return fmt.Errorf("binaire %s introuvable : %w", w.Bin, err)
		}
		if info.IsDir() {
			return fmt.Errorf("le chemin du binaire est un répertoire : %s", w.Bin)
		}
	} else if _, err := exec.LookPath(w.Bin); err != nil {
		return fmt.Errorf("binaire %s introuvable dans le PATH : %w", w.Bin, err)
	}
	if _, err := os.Stat(w.Config.ModelPath); err != nil {
		return fmt.Errorf("modèle introuvable : %s : %w", w.Config.ModelPath, err)
	}
	return nil
}

// Transcribe lance le moteur sur le segment audio et lit les artefacts
// produits à côté du segment. Le fichier .txt est obligatoire ; un .srt
// absent donne une piste vide avec un avertissement. Les artefacts sont
// supprimés après lecture.
func (w *Whisper) Transcribe(ctx context.Context, audioPath string) (*RawResult, error) {
	outputBase := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	args := w.Config.BuildArgs(audioPath, outputBase)

	log.Debug().Str("bin", w.Bin).Strs("args", args).Msg("exécution whisper")
	cmd := exec.CommandContext(ctx, w.Bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s a échoué sur %s : %w\nsortie : %s",
			filepath.Base(w.Bin), filepath.Base(audioPath), err, string(out))
	}

	txtPath := outputBase + ".txt"
	srtPath := outputBase + ".srt"
	defer os.Remove(txtPath)
	defer os.Remove(srtPath)

	text, err := os.ReadFile(txtPath)
	if err != nil {
		return nil, fmt.Errorf("sortie texte absente pour %s : %w", filepath.Base(audioPath), err)
	}

	var srt []byte
	srt, err = os.ReadFile(srtPath)
	if err != nil {
		log.Warn().Str("segment", filepath.Base(audioPath)).Msg("sortie SRT absente, piste vide pour ce segment")
		srt = nil
	}

	return &RawResult{Text: string(text), SRT: string(srt)}, nil
}
