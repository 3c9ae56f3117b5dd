package memory

import (
	"path"

	"github.com/zeusync/moco/internal/core/host"
)

var _ host.Storage = (*Store)(nil)

// Store keeps saved files in memory under a virtual root.
type Store struct {
	root  string
	files map[string][]byte
}

func NewStore(root string) *Store {
	return &Store{root: root, files: make(map[string][]byte)}
}

func (s *Store) Save(name string, data []byte) (string, error) {
	p := path.Join(s.root, name)
	s.files[p] = append([]byte(nil), data...)
	return p, nil
}

// File returns the last data saved under p.
func (s *Store) File(p string) ([]byte, bool) {
	data, ok := s.files[p]
	return data, ok
}
