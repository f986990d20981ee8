package media

import (
	"errors"
	"math"
	"testing"
)

func TestPlanSegments(t *testing.T) {
	cases := []struct {
		name      string
		duration  float64
		chunk     float64
		wantCount int
		wantLast  float64
	}{
		{"division exacte", 600, 300, 2, 300},
		{"reste court", 610, 300, 3, 10},
		{"plus court qu'un segment", 42, 300, 1, 42},
		{"une seconde de reste", 301, 300, 2, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			segs, err := PlanSegments(c.duration, c.chunk)
			if err != nil {
				t.Fatalf("erreur inattendue : %v", err)
			}
			if len(segs) != c.wantCount {
				t.Fatalf("segments = %d, attendu %d", len(segs), c.wantCount)
			}
			last := segs[len(segs)-1]
			if last.DurationSeconds != c.wantLast {
				t.Fatalf("dernier segment = %v s, attendu %v s", last.DurationSeconds, c.wantLast)
			}
			// les segments couvrent la durée sans trou ni chevauchement
			var cursor float64
			for i, s := range segs {
				if s.Index != i+1 {
					t.Fatalf("index %d au rang %d", s.Index, i)
				}
				if s.StartSeconds != cursor {
					t.Fatalf("segment %d commence à %v, attendu %v", s.Index, s.StartSeconds, cursor)
				}
				if i < len(segs)-1 && s.DurationSeconds != c.chunk {
					t.Fatalf("segment %d dure %v, attendu %v", s.Index, s.DurationSeconds, c.chunk)
				}
				cursor += s.DurationSeconds
			}
			if cursor != c.duration {
				t.Fatalf("couverture = %v, attendu %v", cursor, c.duration)
			}
		})
	}
}

func TestPlanSegmentsErrors(t *testing.T) {
	if _, err := PlanSegments(0, 300); !errors.Is(err, ErrEmptyAsset) {
		t.Fatalf("durée nulle : err = %v", err)
	}
	if _, err := PlanSegments(-5, 300); !errors.Is(err, ErrEmptyAsset) {
		t.Fatalf("durée négative : err = %v", err)
	}
	if _, err := PlanSegments(600, 0); !errors.Is(err, ErrInvalidChunk) {
		t.Fatalf("segment nul : err = %v", err)
	}
	// NaN n'est ni <= 0 ni comparable : le plan sort vide et doit le dire
	if _, err := PlanSegments(math.NaN(), 300); !errors.Is(err, ErrNoSegments) {
		t.Fatalf("durée NaN : err = %v", err)
	}
}
