package subtitles

import (
	"strings"
	"testing"
)

func TestParseSRT(t *testing.T) {
	data := []byte(`1
00:00:00,000 --> 00:00:02,500
Bonjour à tous

2
00:00:03,000 --> 00:00:05,000
ligne une
ligne deux
`)
	blocks, warnings := ParseSRT(data)
	if len(warnings) != 0 {
		t.Fatalf("warnings inattendus : %v", warnings)
	}
	if len(blocks) != 2 {
		t.Fatalf("blocs = %d, attendu 2", len(blocks))
	}
	if blocks[0].StartMs != 0 || blocks[0].EndMs != 2500 || blocks[0].Text != "Bonjour à tous" {
		t.Fatalf("bloc 1 inattendu : %+v", blocks[0])
	}
	if blocks[1].Text != "ligne une\nligne deux" {
		t.Fatalf("texte multiligne inattendu : %q", blocks[1].Text)
	}
}

func TestParseSRTWithoutIndexLines(t *testing.T) {
	data := []byte("00:00:01,000 --> 00:00:02,000\nsans index\n")
	blocks, warnings := ParseSRT(data)
	if len(warnings) != 0 || len(blocks) != 1 {
		t.Fatalf("blocs=%d warnings=%v", len(blocks), warnings)
	}
	if blocks[0].StartMs != 1000 || blocks[0].Text != "sans index" {
		t.Fatalf("bloc inattendu : %+v", blocks[0])
	}
}

func TestParseSRTMalformedTimeLineKeptRaw(t *testing.T) {
	data := []byte(`1
00:00:00,000 --> 00:00:02,000
valide

2
00:00:xx,000 --> 00:00:05,000
invalide mais conservé

3
00:00:06,000 --> 00:00:07,000
valide aussi
`)
	blocks, warnings := ParseSRT(data)
	if len(blocks) != 3 {
		t.Fatalf("blocs = %d, attendu 3", len(blocks))
	}
	if len(warnings) != 1 || warnings[0] != "00:00:xx,000 --> 00:00:05,000" {
		t.Fatalf("warnings inattendus : %v", warnings)
	}
	if !blocks[1].IsRaw() {
		t.Fatalf("bloc 2 devrait être brut : %+v", blocks[1])
	}
	if blocks[1].Text != "invalide mais conservé" {
		t.Fatalf("texte du bloc brut perdu : %q", blocks[1].Text)
	}
	if blocks[2].StartMs != 6000 {
		t.Fatalf("le parseur ne s'est pas resynchronisé : %+v", blocks[2])
	}
}

func TestParseSRTReportsTruncatedRead(t *testing.T) {
	// une ligne au-delà du tampon du scanner interrompt la lecture ; le
	// reste du document est perdu et un warning doit le signaler
	data := []byte("1\n00:00:00,000 --> 00:00:01,000\navant\n\n2\n00:00:02,000 --> 00:00:03,000\n" +
		strings.Repeat("x", 2*1024*1024) + "\n")
	blocks, warnings := ParseSRT(data)
	if len(blocks) == 0 || blocks[0].StartMs != 0 {
		t.Fatalf("les blocs lus avant l'interruption doivent être conservés : %+v", blocks)
	}
	if len(warnings) == 0 {
		t.Fatal("warning attendu quand la lecture est interrompue")
	}
	if !strings.Contains(warnings[len(warnings)-1], "interrompue") {
		t.Fatalf("warning inattendu : %q", warnings[len(warnings)-1])
	}
}

func TestParseSRTEmpty(t *testing.T) {
	blocks, warnings := ParseSRT(nil)
	if len(blocks) != 0 || len(warnings) != 0 {
		t.Fatalf("entrée vide : blocs=%d warnings=%v", len(blocks), warnings)
	}
}

func TestRenderSRT(t *testing.T) {
	blocks := []Block{
		{Index: 1, StartMs: 0, EndMs: 2500, Text: "premier"},
		{Index: 2, RawTimeLine: "00:00:xx,000 --> 00:00:05,000", Text: "brut"},
	}
	want := "1\n00:00:00,000 --> 00:00:02,500\npremier\n\n2\n00:00:xx,000 --> 00:00:05,000\nbrut\n\n"
	if got := string(RenderSRT(blocks)); got != want {
		t.Fatalf("RenderSRT =\n%q\nattendu\n%q", got, want)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	blocks := []Block{
		{Index: 1, StartMs: 1000, EndMs: 2000, Text: "a"},
		{Index: 2, StartMs: 3000, EndMs: 4000, Text: "b\nc"},
	}
	reparsed, warnings := ParseSRT(RenderSRT(blocks))
	if len(warnings) != 0 {
		t.Fatalf("warnings inattendus : %v", warnings)
	}
	if len(reparsed) != 2 {
		t.Fatalf("blocs = %d, attendu 2", len(reparsed))
	}
	for i := range blocks {
		if reparsed[i].StartMs != blocks[i].StartMs || reparsed[i].EndMs != blocks[i].EndMs || reparsed[i].Text != blocks[i].Text {
			t.Fatalf("bloc %d : %+v != %+v", i, reparsed[i], blocks[i])
		}
	}
}
