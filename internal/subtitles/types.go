// Package subtitles contient le cœur du pipeline : le codec d'horodatage SRT,
// le parseur de sortie du moteur, la fusion des sous-titres par segment
// (troncature, décalage temporel, renumérotation) et l'assemblage du
// transcript final.
package subtitles

import "fmt"

// Block représente une entrée de sous-titre (un "cue" SRT) : un intervalle
// temporel et son texte.
//
// Avant fusion les temps sont relatifs au début du segment (le moteur
// transcrit chaque segment comme un fichier indépendant démarrant à zéro),
// après fusion ils sont absolus (relatifs au début de l'asset complet).
type Block struct {
	Index   int   // numéro du bloc, attribué à la fusion (1-based, continu sur tout l'asset)
	StartMs int64 // début en millisecondes
	EndMs   int64 // fin en millisecondes
	Text    string

	// RawTimeLine conserve la ligne d'horodatage d'origine quand elle n'a pas pu
	// être interprétée. Le bloc est alors recopié tel quel dans la sortie,
	// sans troncature ni décalage : politique permissive, une ligne qui n'est
	// pas un horodatage ne doit pas être traitée comme tel.
	RawTimeLine string
}

// IsRaw indique que le bloc porte une ligne d'horodatage non interprétée.
func (b Block) IsRaw() bool { return b.RawTimeLine != "" }

func (b Block) String() string {
	if b.IsRaw() {
		return fmt.Sprintf("bloc %d (brut): %q", b.Index, b.RawTimeLine)
	}
	return fmt.Sprintf("bloc %d: %s --> %s", b.Index, FormatTimestamp(b.StartMs), FormatTimestamp(b.EndMs))
}
