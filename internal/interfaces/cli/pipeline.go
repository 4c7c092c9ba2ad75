package cli

import (
	"context"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/kinship"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/gedcom"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/storage/drive"
)

// loadedTree is the prepared record set shared by the query commands and
// the notify pipeline.
type loadedTree struct {
	doc        *gedcom.Document
	idx        *tree.Index
	graph      *kinship.Graph
	classifier *kinship.Classifier
}

// prepareTree runs the ingestion front half: optional Drive download,
// normalization into the fixed file, decode, index and graph build.
func prepareTree(ctx context.Context, cliCtx *CLIContext) (*loadedTree, error) {
	cfg := cliCtx.Config
	logger := cliCtx.Logger

	if cfg.Drive.FileID != "" {
		downloader, err := drive.NewDownloader(ctx, cfg.Drive.CredentialsFile, logger)
		if err != nil {
			return nil, err
		}
		if err := downloader.Download(ctx, cfg.Drive.FileID, cfg.Gedcom.InputFile); err != nil {
			return nil, err
		}
	}

	if err := gedcom.NormalizeFile(cfg.Gedcom.InputFile, cfg.Gedcom.FixedFile, logger); err != nil {
		return nil, err
	}
	doc, err := gedcom.DecodeFile(cfg.Gedcom.FixedFile, logger)
	if err != nil {
		return nil, err
	}
	idx, err := doc.Index()
	if err != nil {
		return nil, err
	}

	graph := kinship.BuildGraph(idx)
	classifier := kinship.NewClassifier(idx,
		kinship.WithDefaultGender(tree.Gender(cfg.Notify.DefaultGender)),
		kinship.WithLogger(logger),
	)

	logger.Info("family tree ready",
		logging.Int("individuals", idx.IndividualCount()),
		logging.Int("families", idx.FamilyCount()),
		logging.Int("events", len(doc.Events)),
		logging.Int("graph_nodes", graph.NodeCount()),
		logging.Int("graph_edges", graph.EdgeCount()))

	return &loadedTree{doc: doc, idx: idx, graph: graph, classifier: classifier}, nil
}
