package subtitles

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedTimestamp est retourné quand une chaîne ne respecte pas
// strictement le motif SRT "HH:MM:SS,mmm".
var ErrMalformedTimestamp = errors.New("horodatage SRT malformé")

// srtTimestampRegex valide le motif "HH:MM:SS,mmm".
// Les heures acceptent plus de 2 chiffres pour les assets très longs (>= 100h),
// minutes et secondes restent bornées à 59.
var srtTimestampRegex = regexp.MustCompile(`^(\d{2,}):([0-5]\d):([0-5]\d),(\d{3})$`)

// ParseTimestamp convertit "HH:MM:SS,mmm" en millisecondes.
// Le motif doit correspondre exactement, sinon ErrMalformedTimestamp.
func ParseTimestamp(s string) (int64, error) {
	m := srtTimestampRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w : %q", ErrMalformedTimestamp, s)
	}
	h, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w : %q", ErrMalformedTimestamp, s)
	}
	mn, _ := strconv.ParseInt(m[2], 10, 64)
	sec, _ := strconv.ParseInt(m[3], 10, 64)
	ms, _ := strconv.ParseInt(m[4], 10, 64)
	return ((h*3600+mn*60+sec)*1000 + ms), nil
}

// FormatTimestamp formate une valeur en millisecondes vers "HH:MM:SS,mmm".
// Toujours 2 chiffres pour H/M/S et 3 pour les millisecondes.
// Contrat aller-retour : ParseTimestamp(FormatTimestamp(x)) == x pour x >= 0.
func FormatTimestamp(totalMs int64) string {
	if totalMs < 0 {
		totalMs = 0
	}
	h := totalMs / 3_600_000
	mn := (totalMs % 3_600_000) / 60_000
	sec := (totalMs % 60_000) / 1000
	ms := totalMs % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, mn, sec, ms)
}

// MillisFromSeconds convertit des secondes flottantes en millisecondes
// entières. La précision sous-milliseconde est tronquée, pas arrondie.
func MillisFromSeconds(sec float64) int64 {
	if sec <= 0 {
		return 0
	}
	return int64(sec * 1000.0)
}
