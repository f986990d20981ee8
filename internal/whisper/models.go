package whisper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// modelBaseURL est le dépôt officiel des modèles ggml pré-convertis.
const modelBaseURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/"

// ValidModels liste les modèles acceptés, du plus léger au plus lourd.
var ValidModels = []string{
	"tiny", "tiny.en",
	"base", "base.en",
	"small", "small.en",
	"medium", "medium.en",
	"large-v1", "large-v2", "large-v3", "large-v3-turbo",
}

// IsValidModel indique si name figure dans le catalogue.
func IsValidModel(name string) bool {
	for _, m := range ValidModels {
		if m == name {
			return true
		}
	}
	return false
}

// ModelFilename retourne le nom de fichier ggml du modèle.
// "base" et "ggml-base.bin" donnent tous deux "ggml-base.bin".
func ModelFilename(name string) string {
	name = strings.TrimSuffix(strings.TrimPrefix(name, "ggml-"), ".bin")
	return "ggml-" + name + ".bin"
}

// ModelURL retourne l'URL de téléchargement du modèle.
func ModelURL(name string) string {
	return modelBaseURL + ModelFilename(name)
}

// ModelPath retourne le chemin local attendu du modèle dans modelsDir.
func ModelPath(modelsDir, name string) string {
	return filepath.Join(modelsDir, ModelFilename(name))
}

// EnsureModel garantit la présence locale du modèle : si le fichier existe
// déjà il est réutilisé, sinon il est téléchargé via download (injectée
// pour garder ce paquet sans dépendance réseau).
func EnsureModel(modelsDir, name string, download func(url, dest string) error) (string, error) {
	if !IsValidModel(strings.TrimSuffix(strings.TrimPrefix(name, "ggml-"), ".bin")) {
		return "", fmt.Errorf("modèle inconnu %q (choix : %s)", name, strings.Join(ValidModels, ", "))
	}
	dest := ModelPath(modelsDir, name)
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}
	if err := os.MkdirAll(modelsDir, 0o755); err != nil {
		return "", fmt.Errorf("création du répertoire des modèles : %w", err)
	}
	if err := download(ModelURL(name), dest); err != nil {
		return "", fmt.Errorf("téléchargement du modèle %s : %w", name, err)
	}
	return dest, nil
}
