package config

import (
	"runtime"
	"testing"
)

func TestResolveWhisperPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("suffixe .exe ajouté sous Windows")
	}

	cases := []struct {
		name string
		path string
		want string
	}{
		// pas de chemin : nom nu, résolution via PATH à l'exécution
		{"", "", "whisper-cli"},
		// répertoire : on y joint le nom du binaire
		{"whisper-cli", "/opt/whisper/build/bin", "/opt/whisper/build/bin/whisper-cli"},
		// chemin complet vers l'exécutable : utilisé tel quel, jamais rejoint
		{"whisper-cli", "/opt/whisper/build/bin/whisper-cli", "/opt/whisper/build/bin/whisper-cli"},
	}
	for _, c := range cases {
		cfg := defaultConfig()
		cfg.Whisper.Name = c.name
		cfg.Whisper.Path = c.path
		cfg.ResolveWhisperPath()
		if got := cfg.Whisper.ResolvedPath; got != c.want {
			t.Fatalf("ResolveWhisperPath(name=%q, path=%q) = %q, attendu %q", c.name, c.path, got, c.want)
		}
	}
}
