package subtitles

import (
	"fmt"
	"strings"
)

// RenderSRT sérialise la piste fusionnée au format SRT.
// Les blocs bruts ré-émettent leur ligne d'horodatage d'origine telle quelle.
func RenderSRT(blocks []Block) []byte {
	var b strings.Builder
	for _, blk := range blocks {
		fmt.Fprintf(&b, "%d\n", blk.Index)
		if blk.IsRaw() {
			b.WriteString(blk.RawTimeLine)
			b.WriteByte('\n')
		} else {
			fmt.Fprintf(&b, "%s --> %s\n", FormatTimestamp(blk.StartMs), FormatTimestamp(blk.EndMs))
		}
		if blk.Text != "" {
			b.WriteString(blk.Text)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
