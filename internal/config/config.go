package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/patrickprogramme/transcriptor/internal/assets"
	"github.com/patrickprogramme/transcriptor/internal/fsutil"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`
	ModelsDir string `yaml:"models_dir"`
	WorkDir   string `yaml:"work_dir"`

	// Transcription
	Model    string `yaml:"model"`
	Language string `yaml:"language"`

	// Découpe : durée nominale d'un segment en secondes
	ChunkSeconds float64 `yaml:"chunk_seconds"`

	// Préparation audio
	Preprocess struct {
		Convert   bool `yaml:"convert"`
		Denoise   bool `yaml:"denoise"`
		Normalize bool `yaml:"normalize"`
	} `yaml:"preprocess"`

	// Sorties
	CopyToClipboard bool `yaml:"copy_to_clipboard"`
	KeepSegments    bool `yaml:"keep_segments"`

	// whisper-cli
	Whisper struct {
		Name           string  `yaml:"name"`
		Path           string  `yaml:"path"`
		Temperature    float64 `yaml:"temperature"`
		PostProcess    bool    `yaml:"post_process"`
		TimeoutMinutes int     `yaml:"timeout_minutes"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"whisper"`

	// ffmpeg
	FFmpeg struct {
		Name      string `yaml:"name"`
		ProbeName string `yaml:"probe_name"`
	} `yaml:"ffmpeg"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."
	c.ModelsDir = "models"
	c.WorkDir = ""

	// Transcription
	c.Model = "base"
	c.Language = "id"

	// Découpe
	c.ChunkSeconds = 300

	// Préparation audio
	c.Preprocess.Convert = true
	c.Preprocess.Denoise = false
	c.Preprocess.Normalize = false

	// Sorties
	c.CopyToClipboard = true
	c.KeepSegments = false

	// whisper-cli
	c.Whisper.Name = "whisper-cli"
	c.Whisper.Path = ""
	c.Whisper.Temperature = 0.6
	c.Whisper.PostProcess = true
	c.Whisper.TimeoutMinutes = 30

	// ffmpeg
	c.FFmpeg.Name = "ffmpeg"
	c.FFmpeg.ProbeName = "ffprobe"

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "transcriptor.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	// lire l'asset embarqué via assets.Embedded et DefaultConfigAsset
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// s'assurer que le dossier parent existe
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	// log utile pour le debugging
	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(c.OutputDir)
	c.ModelsDir = filepath.Clean(c.ModelsDir)

	// Trim and normalize strings
	c.Model = strings.TrimSpace(c.Model)
	if c.Model == "" {
		c.Model = "base"
	}
	c.Language = strings.TrimSpace(strings.ToLower(c.Language))

	if c.ChunkSeconds <= 0 {
		c.ChunkSeconds = 300
	}
	if c.Whisper.TimeoutMinutes <= 0 {
		c.Whisper.TimeoutMinutes = 30
	}

	// centraliser la résolution/normalisation de whisper-cli
	c.ResolveWhisperPath()
}

// ResolveWhisperPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.Whisper.Name ou cfg.Whisper.Path.
func (c *Config) ResolveWhisperPath() {
	if c == nil {
		return
	}

	// Normaliser le nom et ajouter .exe sur Windows si nécessaire
	c.Whisper.Name = strings.TrimSpace(c.Whisper.Name)
	if c.Whisper.Name == "" {
		c.Whisper.Name = "whisper-cli"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.Whisper.Name), ".exe") {
		c.Whisper.Name = c.Whisper.Name + ".exe"
	}

	// Résolution du chemin
	// si cfg.Path est vide -> le binaire sera cherché dans le PATH
	exeName := c.Whisper.Name
	cfgPath := strings.TrimSpace(c.Whisper.Path)
	if cfgPath == "" {
		c.Whisper.ResolvedPath = exeName
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.Whisper.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.Whisper.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
