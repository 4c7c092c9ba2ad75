package http

import (
	"bytes"
	"context"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/kinship"
	"github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/gedcom"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	prom "github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/prometheus"
	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

// State holds the decoded record set and the structures derived from it.
// All of them are rebuilt together on reload; readers take a consistent
// snapshot under the lock.
type State struct {
	mu         sync.RWMutex
	idx        *tree.Index
	graph      *kinship.Graph
	classifier *kinship.Classifier
	events     []*tree.Event

	defaultGender tree.Gender
	logger        logging.Logger
	metrics       *prom.Metrics
}

// NewState builds an empty State.  metrics may be nil.
func NewState(defaultGender tree.Gender, logger logging.Logger, metrics *prom.Metrics) *State {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &State{defaultGender: defaultGender, logger: logger, metrics: metrics}
}

// LoadFile normalizes and decodes the GEDCOM file at path and swaps in the
// freshly built index, graph and classifier.  On failure the previous state
// stays in place.
func (s *State) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.countReload("error")
		return errors.Wrap(err, errors.ErrCodeGedcomReadFailed, "failed to open GEDCOM file").WithDetail(path)
	}
	defer f.Close()

	var fixed bytes.Buffer
	if _, err := gedcom.Normalize(f, &fixed, s.logger); err != nil {
		s.countReload("error")
		return err
	}
	doc, err := gedcom.Decode(&fixed, s.logger)
	if err != nil {
		s.countReload("error")
		return err
	}
	idx, err := doc.Index()
	if err != nil {
		s.countReload("error")
		return err
	}

	graph := kinship.BuildGraph(idx)
	classifier := kinship.NewClassifier(idx,
		kinship.WithDefaultGender(s.defaultGender),
		kinship.WithLogger(s.logger),
	)

	s.mu.Lock()
	s.idx = idx
	s.graph = graph
	s.classifier = classifier
	s.events = doc.Events
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.TreeIndividuals.Set(float64(idx.IndividualCount()))
		s.metrics.TreeFamilies.Set(float64(idx.FamilyCount()))
		s.metrics.TreeEvents.Set(float64(len(doc.Events)))
		s.metrics.GraphNodes.Set(float64(graph.NodeCount()))
		s.metrics.GraphEdges.Set(float64(graph.EdgeCount()))
	}
	s.countReload("ok")
	s.logger.Info("record set loaded",
		logging.String("path", path),
		logging.Int("individuals", idx.IndividualCount()),
		logging.Int("families", idx.FamilyCount()))
	return nil
}

func (s *State) countReload(result string) {
	if s.metrics != nil {
		s.metrics.TreeReloads.WithLabelValues(result).Inc()
	}
}

// Snapshot returns the current index, graph and classifier.  Any of them is
// nil before the first successful LoadFile.
func (s *State) Snapshot() (*tree.Index, *kinship.Graph, *kinship.Classifier) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx, s.graph, s.classifier
}

// Watch reloads the state whenever the file at path changes, until ctx is
// cancelled.  Editors and downloads replace files rather than appending, so
// create and rename events trigger reloads too.  A failed reload keeps the
// previous state and is only logged.
func (s *State) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create file watcher")
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to watch GEDCOM file").WithDetail(path)
	}

	go func() {
		defer watcher.Close()

		// Debounce: a single save often produces several events.
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					pending = time.After(250 * time.Millisecond)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("file watcher error", logging.Err(err))
			case <-pending:
				pending = nil
				if err := s.LoadFile(path); err != nil {
					s.logger.Error("reload failed, keeping previous record set",
						logging.String("path", path), logging.Err(err))
				}
			}
		}
	}()
	return nil
}
