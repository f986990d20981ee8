package model

import "fmt"

// AudioAsset représente le fichier audio source d'un job de transcription.
// L'asset est en lecture seule pour le cœur du pipeline : le pré-traitement
// le remplace par un nouvel asset, il ne le modifie jamais en place.
type AudioAsset struct {
	Path            string
	DurationSeconds float64
	// Downloaded indique que le fichier provient d'un téléchargement et doit
	// être supprimé en fin de job.
	Downloaded bool
}

// Segment est une tranche temporelle contiguë d'un AudioAsset, traitée comme
// une unité de transcription indépendante.
//
// Invariant : les segments sont contigus et sans recouvrement, c'est-à-dire
// StartSeconds == somme des DurationSeconds des segments précédents.
type Segment struct {
	Index           int // 1-based, l'ordre est contractuel
	StartSeconds    float64
	DurationSeconds float64 // fixe, sauf pour le dernier segment (peut être plus court)
	Path            string  // média découpé, propriété du pilote (supprimé après consommation)
}

func (s Segment) String() string {
	return fmt.Sprintf("segment %d: %s (+%.1fs)", s.Index, Seconds(int64(s.StartSeconds)).TimestampHHMMSS(), s.DurationSeconds)
}

// SegmentRecord est une entrée du journal segments.json écrit en fin de job.
// Il permet à un appelant de détecter une couverture incomplète : le code de
// sortie du process ne reflète que les erreurs fatales d'initialisation, pas
// les pertes par segment.
type SegmentRecord struct {
	Index           int           `json:"index"`
	StartSeconds    float64       `json:"start_seconds"`
	DurationSeconds float64       `json:"duration_seconds"`
	Status          SegmentStatus `json:"status"`
	Error           string        `json:"error,omitempty"`
	SubtitleBlocks  int           `json:"subtitle_blocks"`
}
