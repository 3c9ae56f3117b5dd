// Package filestore persists export output under a project root directory.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/moco/internal/core/host"
	"github.com/zeusync/moco/internal/core/observability/log"
)

var _ host.Storage = (*Store)(nil)

// Store writes files below root. A file whose content hash matches the last
// write is left untouched so rigs watching the directory do not reload.
type Store struct {
	root string
	log  log.Log

	mu     sync.Mutex
	hashes map[string]uint64
}

func New(root string, l log.Log) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root %q: %w", root, err)
	}
	if err = os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create project root: %w", err)
	}
	return &Store{
		root:   abs,
		log:    l.Named("filestore"),
		hashes: make(map[string]uint64),
	}, nil
}

func (s *Store) Root() string { return s.root }

func (s *Store) Save(name string, data []byte) (string, error) {
	clean := filepath.Clean(name)
	if clean == "." || filepath.IsAbs(clean) || escapesRoot(clean) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	target := filepath.Join(s.root, clean)
	sum := xxhash.Sum64(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.hashes[target]; ok && prev == sum {
		if _, err := os.Stat(target); err == nil {
			s.log.Debug("output unchanged", log.String("path", target), log.Uint64("xxhash", sum))
			return target, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("replace %s: %w", target, err)
	}
	s.hashes[target] = sum
	s.log.Debug("output written",
		log.String("path", target),
		log.Int("bytes", len(data)),
		log.Uint64("xxhash", sum),
	)
	return target, nil
}

// Checksum returns the xxhash of the last data written to path.
func (s *Store) Checksum(path string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum, ok := s.hashes[path]
	return sum, ok
}

func escapesRoot(clean string) bool {
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
