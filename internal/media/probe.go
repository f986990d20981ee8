package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/go-audio/wav"
)

// ProbeDuration retourne la durée de l'audio en secondes, mesurée par
// ffprobe sur le conteneur.
func (f *FFmpeg) ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, f.ProbeName,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("%s a échoué sur %s : %w", f.ProbeName, path, err)
	}
	raw := strings.TrimSpace(string(out))
	dur, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("durée illisible %q : %w", raw, err)
	}
	if dur <= 0 {
		return 0, fmt.Errorf("durée invalide %v pour %s", dur, path)
	}
	return dur, nil
}

// IsTargetWAV indique si le fichier est déjà un WAV PCM 16 bits, mono,
// 16 kHz. Dans ce cas la découpe peut copier les flux sans ré-encoder.
func IsTargetWAV(path string) bool {
	fh, err := os.Open(path)
	if err != nil {
		return false
	}
	defer fh.Close()

	dec := wav.NewDecoder(fh)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return false
	}
	return dec.BitDepth == 16 && dec.NumChans == 1 && dec.SampleRate == 16000
}
