// Package archive téléverse des fichiers vers archive.org via son API S3
// (authentification "LOW accesskey:secret").
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/transcriptor/internal/fetch"
)

// DefaultEndpoint est le point d'entrée S3 d'archive.org.
const DefaultEndpoint = "https://s3.us.archive.org"

// DefaultMetadataEndpoint sert l'API metadata en lecture (sans clé).
const DefaultMetadataEndpoint = "https://archive.org"

// Client téléverse des fichiers dans un item archive.org.
type Client struct {
	Endpoint         string
	MetadataEndpoint string
	AccessKey        string
	SecretKey        string
	HTTPClient       *http.Client
}

// NewClient construit un client avec les clés données. Endpoints et client
// HTTP reçoivent des valeurs par défaut raisonnables.
func NewClient(accessKey, secretKey string) *Client {
	return &Client{
		Endpoint:         DefaultEndpoint,
		MetadataEndpoint: DefaultMetadataEndpoint,
		AccessKey:        accessKey,
		SecretKey:        secretKey,
		HTTPClient:       &http.Client{Timeout: 5 * time.Minute},
	}
}

// ItemExists interroge l'API metadata pour savoir si l'item a déjà du
// contenu. L'API répond un objet JSON vide pour un item inconnu.
func (c *Client) ItemExists(ctx context.Context, item string) (bool, error) {
	metaURL := fmt.Sprintf("%s/metadata/%s", c.MetadataEndpoint, url.PathEscape(item))
	data, err := fetch.FetchBytesWithTimeout(ctx, metaURL, 0, 0)
	if err != nil {
		return false, fmt.Errorf("archive: metadata %s: %w", item, err)
	}
	var meta map[string]json.RawMessage
	if err := json.Unmarshal(data, &meta); err != nil {
		return false, fmt.Errorf("archive: metadata %s illisible: %w", item, err)
	}
	return len(meta) > 0, nil
}

// UploadFile envoie le fichier localPath dans l'item donné, sous son nom de
// base. L'item est créé automatiquement côté archive.org au premier envoi.
func (c *Client) UploadFile(ctx context.Context, item, localPath string) error {
	fh, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("archive: open %s: %w", localPath, err)
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return fmt.Errorf("archive: stat %s: %w", localPath, err)
	}

	name := filepath.Base(localPath)
	dest := fmt.Sprintf("%s/%s/%s", c.Endpoint, url.PathEscape(item), url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, dest, fh)
	if err != nil {
		return fmt.Errorf("archive: new request: %w", err)
	}
	req.ContentLength = info.Size()
	req.Header.Set("authorization", fmt.Sprintf("LOW %s:%s", c.AccessKey, c.SecretKey))
	// création automatique du bucket et métadonnées de l'item
	req.Header.Set("x-archive-auto-make-bucket", "1")
	req.Header.Set("x-archive-meta-mediatype", "texts")
	req.Header.Set("x-archive-meta-subject", "Transcription")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("archive: upload %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("archive: upload %s: statut inattendu %s", name, resp.Status)
	}
	return nil
}

// DetailsURL retourne la page de l'item sur archive.org.
func DetailsURL(item string) string {
	return "https://archive.org/details/" + url.PathEscape(item)
}

// DownloadURL retourne la page de téléchargement direct de l'item.
func DownloadURL(item string) string {
	return "https://archive.org/download/" + url.PathEscape(item)
}
