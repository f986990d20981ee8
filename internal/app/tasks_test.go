package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/patrickprogramme/transcriptor/internal/subtitles"
	"github.com/patrickprogramme/transcriptor/pkg/model"
)

func TestSaveOutputs(t *testing.T) {
	a := testApp(nil)
	outDir := filepath.Join(t.TempDir(), "sortie")

	result := &PipelineResult{
		Track: []subtitles.Block{
			{Index: 1, StartMs: 0, EndMs: 2000, Text: "bonjour"},
		},
		Records: []model.SegmentRecord{
			{Index: 1, DurationSeconds: 300, Status: model.SegmentStatusOK, SubtitleBlocks: 1},
		},
		Succeeded: 1,
		Total:     1,
	}
	result.Transcript.Append("bonjour")

	if err := a.SaveOutputs(result, outDir); err != nil {
		t.Fatalf("SaveOutputs : %v", err)
	}

	txt, err := os.ReadFile(filepath.Join(outDir, "transcript.txt"))
	if err != nil {
		t.Fatalf("transcript.txt : %v", err)
	}
	if string(txt) != "bonjour\n\n" {
		t.Fatalf("transcript.txt = %q", string(txt))
	}

	srt, err := os.ReadFile(filepath.Join(outDir, "transcript.srt"))
	if err != nil {
		t.Fatalf("transcript.srt : %v", err)
	}
	want := "1\n00:00:00,000 --> 00:00:02,000\nbonjour\n\n"
	if string(srt) != want {
		t.Fatalf("transcript.srt = %q, attendu %q", string(srt), want)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "segments.json"))
	if err != nil {
		t.Fatalf("segments.json : %v", err)
	}
	var records []model.SegmentRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("segments.json illisible : %v", err)
	}
	if len(records) != 1 || records[0].Status != model.SegmentStatusOK {
		t.Fatalf("journal inattendu : %+v", records)
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"audio/sermon.mp3": "sermon",
		"https://example.org/files/lecture.wav?dl=1": "lecture",
		"https://example.org/files/":                 "files",
		"enregistrement":                             "enregistrement",
	}
	for in, want := range cases {
		if got := baseName(in); got != want {
			t.Fatalf("baseName(%q) = %q, attendu %q", in, got, want)
		}
	}
}
