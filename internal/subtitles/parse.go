package subtitles

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// ParseSRT lit un document SRT brut (tel qu'écrit par le moteur pour un
// segment) et retourne les blocs, dans l'ordre du document.
//
// Le parseur est volontairement permissif : un cue dont la ligne d'horodatage
// ne correspond pas au motif attendu n'est pas rejeté, il est conservé tel
// quel (Block.RawTimeLine) et sa ligne est ajoutée aux warnings retournés.
// L'appelant décide quoi en faire (typiquement : logger un avertissement).
func ParseSRT(data []byte) ([]Block, []string) {
	var blocks []Block
	var warnings []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// ligne d'index optionnelle (un entier seul) : on la consomme sans la
		// conserver, la renumérotation est faite à la fusion
		timeLine := line
		if isAllDigits(line) {
			if !scanner.Scan() {
				break
			}
			timeLine = strings.TrimSpace(scanner.Text())
		}

		startMs, endMs, ok := parseTimeLine(timeLine)
		text := readCueText(scanner)

		if !ok {
			// passage tel quel : la ligne est recopiée sans modification
			warnings = append(warnings, timeLine)
			blocks = append(blocks, Block{RawTimeLine: timeLine, Text: text})
			continue
		}
		blocks = append(blocks, Block{StartMs: startMs, EndMs: endMs, Text: text})
	}

	// une erreur de lecture (ligne au-delà du tampon) arrête le scanner en
	// silence : la fin du document est perdue, il faut le dire
	if err := scanner.Err(); err != nil {
		warnings = append(warnings, fmt.Sprintf("lecture interrompue, fin du document ignorée : %v", err))
	}

	return blocks, warnings
}

// parseTimeLine interprète une ligne "HH:MM:SS,mmm --> HH:MM:SS,mmm" en
// réutilisant le codec ParseTimestamp pour chacune des deux bornes.
func parseTimeLine(line string) (startMs, endMs int64, ok bool) {
	left, right, found := strings.Cut(line, "-->")
	if !found {
		return 0, 0, false
	}
	start, err := ParseTimestamp(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}
	end, err := ParseTimestamp(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// readCueText lit les lignes de texte du cue courant jusqu'à la ligne vide.
func readCueText(scanner *bufio.Scanner) string {
	var b strings.Builder
	for scanner.Scan() {
		l := scanner.Text()
		if strings.TrimSpace(l) == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimSpace(l))
	}
	return b.String()
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
