package subtitles

import "strings"

// Document accumule le texte brut des segments, dans l'ordre de transcription.
// Chaque contribution non vide est séparée de la précédente par une ligne
// blanche ; les contributions vides ne laissent aucune trace.
type Document struct {
	b     strings.Builder
	count int
}

// Append ajoute le texte d'un segment au document. Retourne false si le
// texte, une fois les blancs retirés, était vide.
func (d *Document) Append(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if d.count > 0 {
		d.b.WriteString("\n\n")
	}
	d.b.WriteString(trimmed)
	d.count++
	return true
}

// Len retourne le nombre de contributions non vides.
func (d *Document) Len() int { return d.count }

// String retourne le document complet. Chaque contribution est suivie
// d'une ligne vide, la dernière comprise : le fichier se termine par "\n\n".
func (d *Document) String() string {
	if d.count == 0 {
		return ""
	}
	return d.b.String() + "\n\n"
}

// Bytes retourne le document sous forme d'octets, prêt à écrire sur disque.
func (d *Document) Bytes() []byte { return []byte(d.String()) }
