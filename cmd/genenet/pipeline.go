package main

import (
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/annotate"
	"github.com/persistorai/genenet/internal/config"
	"github.com/persistorai/genenet/internal/intact"
	"github.com/persistorai/genenet/internal/service"
	"github.com/persistorai/genenet/internal/upstream"
)

// newAnnotator wires cached KEGG and GO lookups against togows.
func newAnnotator(cfg *config.Config, log *logrus.Logger) *annotate.Annotator {
	togows := upstream.New("togows", cfg.HTTPTimeout, log)

	kegg := annotate.NewCachedLookup("kegg", annotate.NewKEGGLookup(togows, cfg.TogowsURL))
	goTerms := annotate.NewCachedLookup("go", annotate.NewGOLookup(togows, cfg.TogowsURL))

	return annotate.NewAnnotator(kegg, goTerms, cfg.Workers, log)
}

// newRunService wires the full fetch, build and annotate pipeline. A nil
// store keeps nothing; a nil annotator is passed through when annotation is off.
func newRunService(cfg *config.Config, store service.RunStore, annotated bool, log *logrus.Logger) *service.RunService {
	fetcher := intact.NewFetcher(upstream.New("intact", cfg.HTTPTimeout, log), cfg.IntactURL, cfg.IntactSpecies, cfg.Workers, log)

	var annotator service.Annotator
	if annotated {
		annotator = newAnnotator(cfg, log)
	}

	return service.NewRunService(fetcher, annotator, store, cfg.Quality, log)
}
