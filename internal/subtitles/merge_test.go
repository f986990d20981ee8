package subtitles

import "testing"

func TestMergeShiftsByOffset(t *testing.T) {
	in := []Block{
		{StartMs: 0, EndMs: 2000, Text: "premier"},
		{StartMs: 2500, EndMs: 4000, Text: "second"},
	}
	out, counter := Merge(in, 300000, 300000, false, 0)
	if counter != 2 {
		t.Fatalf("compteur = %d, attendu 2", counter)
	}
	if out[0].StartMs != 300000 || out[0].EndMs != 302000 {
		t.Fatalf("bloc 1 décalé en [%d,%d]", out[0].StartMs, out[0].EndMs)
	}
	if out[1].StartMs != 302500 || out[1].EndMs != 304000 {
		t.Fatalf("bloc 2 décalé en [%d,%d]", out[1].StartMs, out[1].EndMs)
	}
}

func TestMergeTruncatesBeforeShifting(t *testing.T) {
	capMs := int64(300000)
	offset := int64(600000)
	in := []Block{
		// dépasse la borne en fin seulement : coupé à la borne
		{StartMs: 299000, EndMs: 301000, Text: "déborde"},
		// commence au-delà de la borne : écrasé sur la borne
		{StartMs: 300500, EndMs: 302000, Text: "hors segment"},
	}
	out, _ := Merge(in, offset, capMs, false, 0)
	if out[0].StartMs != 299000+offset || out[0].EndMs != capMs+offset {
		t.Fatalf("bloc débordant = [%d,%d]", out[0].StartMs, out[0].EndMs)
	}
	if out[1].StartMs != capMs+offset || out[1].EndMs != capMs+offset {
		t.Fatalf("bloc hors segment = [%d,%d]", out[1].StartMs, out[1].EndMs)
	}
}

func TestMergeFinalSegmentNotTruncated(t *testing.T) {
	in := []Block{{StartMs: 299000, EndMs: 305000, Text: "fin"}}
	out, _ := Merge(in, 600000, 300000, true, 0)
	if out[0].StartMs != 899000 || out[0].EndMs != 905000 {
		t.Fatalf("dernier segment tronqué : [%d,%d]", out[0].StartMs, out[0].EndMs)
	}
}

func TestMergeRepairsInvertedRange(t *testing.T) {
	in := []Block{{StartMs: 5000, EndMs: 4000, Text: "inversé"}}
	out, _ := Merge(in, 1000, 300000, false, 0)
	if out[0].EndMs != out[0].StartMs {
		t.Fatalf("plage non réparée : [%d,%d]", out[0].StartMs, out[0].EndMs)
	}
	if out[0].StartMs != 6000 {
		t.Fatalf("début = %d, attendu 6000", out[0].StartMs)
	}
}

func TestMergeReindexesAcrossCalls(t *testing.T) {
	first := []Block{{Text: "a"}, {Text: "b"}}
	second := []Block{{Text: "c"}}

	out1, counter := Merge(first, 0, 300000, false, 0)
	out2, counter := Merge(second, 300000, 300000, true, counter)

	got := []int{out1[0].Index, out1[1].Index, out2[0].Index}
	for i, idx := range got {
		if idx != i+1 {
			t.Fatalf("indices = %v, attendu 1,2,3", got)
		}
	}
	if counter != 3 {
		t.Fatalf("compteur final = %d, attendu 3", counter)
	}
}

func TestMergeRawBlockPassesThrough(t *testing.T) {
	raw := "00:00:xx,000 --> 00:00:05,000"
	in := []Block{
		{StartMs: 0, EndMs: 1000, Text: "bon"},
		{RawTimeLine: raw, Text: "cassé"},
	}
	out, counter := Merge(in, 120000, 300000, false, 5)
	if counter != 7 {
		t.Fatalf("compteur = %d, attendu 7", counter)
	}
	if out[1].Index != 7 {
		t.Fatalf("bloc brut non renuméroté : index %d", out[1].Index)
	}
	if out[1].RawTimeLine != raw || out[1].StartMs != 0 || out[1].EndMs != 0 {
		t.Fatalf("bloc brut modifié : %+v", out[1])
	}
}
