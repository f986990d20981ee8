package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/patrickprogramme/transcriptor/pkg/model"
)

// Split matérialise le plan de découpe : chaque segment est extrait de src
// dans workDir sous le nom part_N.wav. Si la source est déjà au format
// cible, les flux sont copiés sans ré-encodage ; sinon chaque segment est
// ré-encodé en PCM 16 bits mono 16 kHz.
func (f *FFmpeg) Split(ctx context.Context, src, workDir string, plan []model.Segment) ([]model.Segment, error) {
	copyStreams := IsTargetWAV(src)
	log.Debug().Bool("copie_directe", copyStreams).Int("segments", len(plan)).Msg("découpe audio")

	out := make([]model.Segment, 0, len(plan))
	for _, seg := range plan {
		dst := filepath.Join(workDir, fmt.Sprintf("part_%d.wav", seg.Index))
		args := []string{
			"-y",
			"-ss", formatSeconds(seg.StartSeconds),
			"-t", formatSeconds(seg.DurationSeconds),
			"-i", src,
		}
		if copyStreams {
			args = append(args, "-c", "copy")
		} else {
			args = append(args, "-ac", "1", "-ar", "16000", "-c:a", "pcm_s16le")
		}
		args = append(args, dst)

		if err := f.run(ctx, args...); err != nil {
			return nil, fmt.Errorf("segment %d : %w", seg.Index, err)
		}
		seg.Path = dst
		out = append(out, seg)
	}
	return out, nil
}

// formatSeconds sérialise une durée en secondes pour -ss/-t, sans
// notation exponentielle.
func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}
