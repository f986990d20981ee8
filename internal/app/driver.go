package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/patrickprogramme/transcriptor/internal/subtitles"
	"github.com/patrickprogramme/transcriptor/internal/whisper"
	"github.com/patrickprogramme/transcriptor/pkg/model"
)

// PipelineResult regroupe les sorties accumulées sur l'ensemble des
// segments : le texte brut, la piste de sous-titres fusionnée et le journal
// par segment.
type PipelineResult struct {
	Transcript subtitles.Document
	Track      []subtitles.Block
	Records    []model.SegmentRecord
	Succeeded  int
	Total      int
}

// TranscribeSegments traite les segments strictement dans l'ordre, un seul
// à la fois. L'échec d'un segment est consigné et n'interrompt pas les
// suivants ; son créneau temporel reste réservé dans la piste fusionnée,
// l'offset cumulé avance de la durée nominale du segment quoi qu'il arrive.
func (a *App) TranscribeSegments(ctx context.Context, segments []model.Segment) (*PipelineResult, error) {
	result := &PipelineResult{Total: len(segments)}

	var offsetMs int64
	counter := 0
	timeout := time.Duration(a.cfg.Whisper.TimeoutMinutes) * time.Minute

	for i, seg := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		isFinal := i == len(segments)-1
		capMs := subtitles.MillisFromSeconds(seg.DurationSeconds)

		a.ui.Progress(ctx, seg.Index, len(segments), fmt.Sprintf("transcription de %s", seg.String()))

		record := model.SegmentRecord{
			Index:           seg.Index,
			StartSeconds:    seg.StartSeconds,
			DurationSeconds: seg.DurationSeconds,
			Status:          model.SegmentStatusOK,
		}

		raw, err := a.transcribeOne(ctx, seg, timeout)
		if err != nil {
			log.Error().Int("segment", seg.Index).Err(err).Msg("segment en échec, on continue")
			a.ui.PrintError(ctx, fmt.Sprintf("⚠️  segment %d en échec : %v", seg.Index, err))
			record.Status = model.SegmentStatusFailed
			record.Error = err.Error()
			result.Records = append(result.Records, record)
			offsetMs += capMs
			continue
		}

		// texte brut
		result.Transcript.Append(raw.Text)

		// piste de sous-titres
		blocks, warnings := subtitles.ParseSRT([]byte(raw.SRT))
		for _, w := range warnings {
			log.Warn().Int("segment", seg.Index).Str("ligne", w).Msg("horodatage illisible, recopié tel quel")
		}
		merged, next := subtitles.Merge(blocks, offsetMs, capMs, isFinal, counter)
		counter = next
		result.Track = append(result.Track, merged...)

		record.SubtitleBlocks = len(merged)
		result.Records = append(result.Records, record)
		result.Succeeded++
		offsetMs += capMs
	}

	return result, nil
}

// transcribeOne exécute le moteur sur un segment, borné par le timeout
// configuré. Le fichier audio du segment est supprimé après usage sauf si
// keep_segments est actif.
func (a *App) transcribeOne(ctx context.Context, seg model.Segment, timeout time.Duration) (*whisper.RawResult, error) {
	if !a.cfg.KeepSegments {
		defer os.Remove(seg.Path)
	}

	segCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return a.engine.Transcribe(segCtx, seg.Path)
}
