package corpus

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/patmatch/matcher/graph"
	"gopkg.in/yaml.v3"
)

// Repository loads pattern corpora from a storage location. A corpus is a
// folder with one sub-folder per pattern; each sub-folder holds the pattern's
// fragment documents as YAML files, one per mined example. Any storage scheme
// supported by afs works (file system, in-memory, archives, cloud).
type Repository struct {
	fs afs.Service
}

// New creates a repository backed by the default afs service
func New() *Repository {
	return &Repository{fs: afs.New()}
}

// LoadGraphPatterns loads every graph pattern under the corpus URL. Fragments
// are read in name order, duplicates dropped by fingerprint, suffix hints
// attached to variable nodes; the first fragment becomes the pattern graph.
func (r *Repository) LoadGraphPatterns(ctx context.Context, URL string) ([]*graph.GraphPattern, error) {
	var result []*graph.GraphPattern
	err := r.eachPattern(ctx, URL, func(key string, documents [][]byte) error {
		var fragments []*graph.Graph
		seen := map[uint64]bool{}
		for _, document := range documents {
			fragment := &graph.Graph{}
			if err := yaml.Unmarshal(document, fragment); err != nil {
				return fmt.Errorf("failed to decode fragment of pattern %q: %w", key, err)
			}
			if err := fragment.Validate(); err != nil {
				return fmt.Errorf("pattern %q: %w", key, err)
			}
			fingerprint, err := fragment.Fingerprint()
			if err != nil {
				return err
			}
			if seen[fingerprint] {
				continue
			}
			seen[fingerprint] = true
			fragments = append(fragments, fragment)
		}
		if len(fragments) == 0 {
			return fmt.Errorf("pattern %q has no fragments: %w", key, graph.ErrMalformed)
		}
		attachGraphHints(fragments)
		result = append(result, &graph.GraphPattern{Key: key, Graph: fragments[0]})
		return nil
	})
	return result, err
}

// LoadTreePatterns loads every tree pattern under the corpus URL; all deduped
// fragments are kept as match candidates for the pattern.
func (r *Repository) LoadTreePatterns(ctx context.Context, URL string) ([]*graph.TreePattern, error) {
	var result []*graph.TreePattern
	err := r.eachPattern(ctx, URL, func(key string, documents [][]byte) error {
		var fragments []*graph.Tree
		seen := map[uint64]bool{}
		for _, document := range documents {
			fragment := &graph.Tree{}
			if err := yaml.Unmarshal(document, fragment); err != nil {
				return fmt.Errorf("failed to decode fragment of pattern %q: %w", key, err)
			}
			if err := fragment.Validate(); err != nil {
				return fmt.Errorf("pattern %q: %w", key, err)
			}
			fingerprint, err := fragment.Fingerprint()
			if err != nil {
				return err
			}
			if seen[fingerprint] {
				continue
			}
			seen[fingerprint] = true
			fragments = append(fragments, fragment)
		}
		if len(fragments) == 0 {
			return fmt.Errorf("pattern %q has no fragments: %w", key, graph.ErrMalformed)
		}
		attachTreeHints(fragments)
		result = append(result, &graph.TreePattern{Key: key, Fragments: fragments})
		return nil
	})
	return result, err
}

// eachPattern lists pattern folders under the corpus URL and hands each
// pattern's fragment documents, in name order, to the callback
func (r *Repository) eachPattern(ctx context.Context, URL string, handler func(key string, documents [][]byte) error) error {
	objects, err := r.fs.List(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to list corpus %s: %w", URL, err)
	}
	var keys []string
	for _, object := range objects {
		// listing includes the corpus folder itself
		if !object.IsDir() || strings.TrimRight(object.URL(), "/") == strings.TrimRight(URL, "/") {
			continue
		}
		keys = append(keys, object.Name())
	}
	sort.Strings(keys)
	for _, key := range keys {
		documents, err := r.loadDocuments(ctx, url.Join(URL, key))
		if err != nil {
			return err
		}
		if len(documents) == 0 {
			continue
		}
		if err := handler(key, documents); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) loadDocuments(ctx context.Context, URL string) ([][]byte, error) {
	objects, err := r.fs.List(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to list pattern %s: %w", URL, err)
	}
	var matched []storage.Object
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		name := object.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			matched = append(matched, object)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name() < matched[j].Name() })
	var result [][]byte
	for _, object := range matched {
		data, err := r.fs.DownloadWithURL(ctx, object.URL())
		if err != nil {
			return nil, fmt.Errorf("failed to download %s: %w", object.URL(), err)
		}
		result = append(result, data)
	}
	return result, nil
}
