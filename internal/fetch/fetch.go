// Package fetch fournit des utilitaires légers et testables pour télécharger
// des ressources HTTP : petites réponses en mémoire, et gros fichiers
// (audio, modèles) en streaming vers le disque avec barre de progression.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

const (
	DefaultTimeout  = 15 * time.Second
	DefaultMaxBytes = 10_000_000
	// DefaultDownloadTimeout borne le téléchargement d'un fichier complet
	// (audio source ou modèle).
	DefaultDownloadTimeout = 300 * time.Second
	DefaultUserAgent       = "transcriptor/1.0"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// IsRemoteURL indique si la source est une URL http(s) plutôt qu'un chemin
// local.
func IsRemoteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// FetchBytesWithTimeout télécharge l'URL et retourne les octets.
// - ctx peut être nil.
// - timeout : si <=0 on utilise DefaultTimeout.
// - maxBytes : si <=0 on utilise DefaultMaxBytes.
// Note : cette fonction lit tout en mémoire (OK pour de petites réponses).
func FetchBytesWithTimeout(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) ([]byte, error) {
	// defaults
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	// timeout via context
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := doGet(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// si Content-Length connu et supérieur à maxBytes -> échouer vite
	if resp.ContentLength > 0 && resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("fetch: content-length %d: %w (limit %d)", resp.ContentLength, ErrTooLarge, maxBytes)
	}

	r := io.LimitReader(resp.Body, maxBytes+1) // +1 pour détecter dépassement
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("fetch: %w (>%d bytes)", ErrTooLarge, maxBytes)
	}
	return data, nil
}

// FetchToFile télécharge l'URL en streaming vers destPath, avec une barre
// de progression sur stderr. L'écriture passe par un fichier temporaire
// renommé à la fin : destPath n'existe jamais à moitié écrit.
func FetchToFile(ctx context.Context, rawURL, destPath string, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultDownloadTimeout
	}
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := doGet(ctx, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tmp := destPath + ".part"
	fh, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("fetch: create temp file: %w", err)
	}

	bar := progressbar.DefaultBytes(resp.ContentLength, "téléchargement")
	_, err = io.Copy(io.MultiWriter(fh, bar), resp.Body)
	closeErr := fh.Close()
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("fetch: download %s: %w", rawURL, err)
	}
	if closeErr != nil {
		os.Remove(tmp)
		return fmt.Errorf("fetch: close temp file: %w", closeErr)
	}
	if err := os.Rename(tmp, destPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("fetch: rename to %s: %w", destPath, err)
	}
	return nil
}

func doGet(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	client := &http.Client{} // pour tests on pourra passer un client en paramètre si besoin
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch: %w: %s", ErrStatus, resp.Status)
	}
	return resp, nil
}
