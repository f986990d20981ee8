package media

import (
	"errors"

	"github.com/patrickprogramme/transcriptor/pkg/model"
)

var (
	// ErrEmptyAsset signale une durée totale nulle ou négative.
	ErrEmptyAsset = errors.New("durée audio nulle")
	// ErrInvalidChunk signale une durée de segment nulle ou négative.
	ErrInvalidChunk = errors.New("durée de segment invalide")
	// ErrNoSegments signale un plan vide malgré un asset non vide.
	ErrNoSegments = errors.New("aucun segment planifié")
)

// PlanSegments découpe une durée totale en segments consécutifs de
// chunkSeconds secondes. Tous les segments ont la durée nominale sauf le
// dernier, qui couvre le reste et peut être plus court.
func PlanSegments(durationSeconds, chunkSeconds float64) ([]model.Segment, error) {
	if durationSeconds <= 0 {
		return nil, ErrEmptyAsset
	}
	if chunkSeconds <= 0 {
		return nil, ErrInvalidChunk
	}

	var segments []model.Segment
	for start := 0.0; start < durationSeconds; start += chunkSeconds {
		length := chunkSeconds
		if start+length > durationSeconds {
			length = durationSeconds - start
		}
		segments = append(segments, model.Segment{
			Index:           len(segments) + 1,
			StartSeconds:    start,
			DurationSeconds: length,
		})
	}
	// une durée non comparable (NaN) passe les gardes sans produire de segment
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	return segments, nil
}
