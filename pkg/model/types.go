package model

import "fmt"

// Seconds est un alias explicite pour représenter une durée en secondes.
type Seconds int64

// TimestampHHMMSS formate Seconds en "HH:MM:SS" (toujours 2 chiffres par composant).
// Exemple : 65 -> "00:01:05", 3661 -> "01:01:01".
func (s Seconds) TimestampHHMMSS() string {
	total := int64(s)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// SegmentStatus décrit l'issue du traitement d'un segment dans le journal final.
type SegmentStatus string

const (
	SegmentStatusOK     SegmentStatus = "ok"
	SegmentStatusFailed SegmentStatus = "failed"
)
