package ui

import "context"

type Interface interface {
	// GetSource doit renvoyer une source audio : chemin local existant ou URL http(s).
	// Implémentation terminale : priorité clipboard -> prompt
	GetSource(ctx context.Context) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// Progress affiche l'avancement d'une étape numérotée (index sur total).
	Progress(ctx context.Context, index, total int, msg string)
}
