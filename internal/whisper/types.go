// Package whisper pilote le binaire whisper-cli : vérification de
// présence, construction des arguments et récupération des sorties texte
// et SRT produites pour chaque segment audio.
package whisper

import (
	"context"
	"strconv"
)

// Interface expose les opérations du moteur de transcription. Le driver ne
// dépend que de cette interface, ce qui permet d'injecter un faux moteur
// dans les tests.
type Interface interface {
	CheckBinary() error
	Transcribe(ctx context.Context, audioPath string) (*RawResult, error)
}

// RawResult regroupe les deux sorties d'une transcription de segment.
type RawResult struct {
	Text string // contenu du fichier .txt
	SRT  string // contenu du fichier .srt, vide si absent
}

// Config porte les paramètres passés au binaire.
type Config struct {
	ModelPath   string
	Language    string
	Temperature float64
	PostProcess bool
}

// Whisper est le wrapper du binaire whisper-cli.
type Whisper struct {
	// Bin est le chemin effectif du binaire : chemin complet, ou nom nu à
	// résoudre dans le PATH (issu de config.ResolveWhisperPath).
	Bin    string
	Config Config
}

// BuildArgs assemble la ligne de commande pour transcrire audioPath en
// écrivant les artefacts outputBase.txt et outputBase.srt.
func (c Config) BuildArgs(audioPath, outputBase string) []string {
	args := []string{
		"-m", c.ModelPath,
		"-f", audioPath,
		"--temperature", strconv.FormatFloat(c.Temperature, 'f', -1, 64),
		"-of", outputBase,
		"-otxt",
		"-osrt",
	}
	if c.Language != "" {
		args = append(args, "-l", c.Language)
	}
	if c.PostProcess {
		args = append(args, "-pp")
	}
	return args
}
