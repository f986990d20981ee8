package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/patrickprogramme/transcriptor/internal/clipboard"
	"github.com/patrickprogramme/transcriptor/internal/fetch"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

// isUsableSource accepte un chemin local existant ou une URL http(s).
func isUsableSource(s string) bool {
	if s == "" {
		return false
	}
	if fetch.IsRemoteURL(s) {
		return true
	}
	info, err := os.Stat(s)
	return err == nil && !info.IsDir()
}

func (t *terminalUI) GetSource(ctx context.Context) (string, error) {
	// 1) clipboard
	if clip, err := clipboard.ReadAll(); err == nil {
		clip = strings.TrimSpace(clip)
		if fetch.IsRemoteURL(clip) {
			t.PrintInfo(ctx, fmt.Sprintf("Utilisation de l'URL depuis le presse-papier: %s", clip))
			return clip, nil
		}
	}
	// 2) prompt
	for {
		fmt.Print("Entrez un fichier audio ou l'URL d'un audio à transcrire: ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		source := strings.TrimSpace(input)
		if isUsableSource(source) {
			return source, nil
		}
		fmt.Println("❌ Source invalide (fichier introuvable ou URL non http/https). Essayez à nouveau.")
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}

func (t *terminalUI) Progress(ctx context.Context, index, total int, msg string) {
	fmt.Printf("[%d/%d] %s\n", index, total, msg)
}
