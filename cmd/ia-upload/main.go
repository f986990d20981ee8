// ia-upload téléverse le contenu d'un dossier de transcriptions vers un
// item archive.org. Les clés d'API sont lues dans l'environnement :
// MY_ACCESS_KEY et MY_SECRET_KEY (voir https://archive.org/account/s3.php).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/patrickprogramme/transcriptor/internal/archive"
	"github.com/patrickprogramme/transcriptor/internal/fsutil"
)

func main() {
	dir := flag.String("dir", "transcripts", "dossier dont les fichiers seront téléversés")
	item := flag.String("item", "", "identifiant de l'item archive.org (défaut: variable ITEM_ID)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	accessKey := os.Getenv("MY_ACCESS_KEY")
	secretKey := os.Getenv("MY_SECRET_KEY")
	if accessKey == "" || secretKey == "" {
		log.Fatal().Msg("MY_ACCESS_KEY et MY_SECRET_KEY doivent être définis dans l'environnement")
	}

	itemID := *item
	if itemID == "" {
		itemID = os.Getenv("ITEM_ID")
	}
	if itemID == "" {
		log.Fatal().Msg("identifiant d'item manquant (-item ou variable ITEM_ID)")
	}

	// refuser un dossier vide plutôt que créer un item sans contenu
	if empty, err := fsutil.IsDirEmpty(*dir); err != nil {
		log.Fatal().Err(err).Str("dir", *dir).Msg("lecture du dossier impossible")
	} else if empty {
		log.Fatal().Str("dir", *dir).Msg("le dossier est vide, rien à téléverser")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := archive.NewClient(accessKey, secretKey)

	// indiquer si on enrichit un item existant ou si on va en créer un
	if exists, err := client.ItemExists(ctx, itemID); err != nil {
		log.Warn().Err(err).Msg("vérification de l'item impossible, on continue")
	} else if exists {
		fmt.Printf("Item %s existant, les fichiers y seront ajoutés.\n", itemID)
	} else {
		fmt.Printf("Item %s inexistant, il sera créé au premier envoi.\n", itemID)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatal().Err(err).Msg("lecture du dossier")
	}

	uploaded := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(*dir, e.Name())
		fmt.Printf("Téléversement de %s...\n", e.Name())
		if err := client.UploadFile(ctx, itemID, path); err != nil {
			log.Fatal().Err(err).Str("fichier", e.Name()).Msg("téléversement en échec")
		}
		uploaded++
	}

	fmt.Printf("✅ %d fichier(s) téléversé(s)\n", uploaded)
	fmt.Printf("Item   : %s\n", archive.DetailsURL(itemID))
	fmt.Printf("Direct : %s\n", archive.DownloadURL(itemID))
}
