package subtitles

// Merge intègre les blocs d'un segment dans la piste globale.
//
// Règles appliquées dans cet ordre, pour chaque bloc horodaté :
//  1. troncature à la durée nominale du segment (capMs), sauf pour le
//     dernier segment : un cue qui commence au-delà de la borne est écrasé
//     sur la borne, un cue qui la dépasse seulement en fin y est coupé ;
//  2. décalage des deux bornes par l'offset cumulé du segment (offsetMs) ;
//  3. réparation : une fin antérieure au début est ramenée sur le début.
//
// Les blocs bruts (RawTimeLine non vide) traversent sans retouche
// d'horodatage mais sont renumérotés comme les autres, ce qui garde la
// numérotation du document final continue.
//
// counter est le dernier index attribué par les fusions précédentes ; la
// valeur retournée est le nouveau dernier index, à repasser à l'appel
// suivant.
func Merge(blocks []Block, offsetMs, capMs int64, isFinal bool, counter int) ([]Block, int) {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		counter++
		b.Index = counter
		if b.IsRaw() {
			out = append(out, b)
			continue
		}
		if !isFinal {
			if b.StartMs >= capMs {
				b.StartMs = capMs
				b.EndMs = capMs
			} else if b.EndMs > capMs {
				b.EndMs = capMs
			}
		}
		b.StartMs += offsetMs
		b.EndMs += offsetMs
		if b.EndMs < b.StartMs {
			b.EndMs = b.StartMs
		}
		out = append(out, b)
	}
	return out, counter
}
