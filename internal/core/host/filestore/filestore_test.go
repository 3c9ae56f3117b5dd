package filestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/moco/internal/core/observability/log"
)

func TestSaveWritesUnderRoot(t *testing.T) {
	root := t.TempDir()
	s, err := New(root, log.NewNop())
	require.NoError(t, err)

	p, err := s.Save("CameraMovement.txt", []byte("0.0         \n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root(), "CameraMovement.txt"), p)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "0.0         \n", string(data))

	sum, ok := s.Checksum(p)
	require.True(t, ok)
	assert.Equal(t, xxhash.Sum64(data), sum)
}

func TestSaveSkipsIdenticalContent(t *testing.T) {
	s, err := New(t.TempDir(), log.NewNop())
	require.NoError(t, err)

	p, err := s.Save("move.arcm", []byte("<scen:scene/>"))
	require.NoError(t, err)
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(p, old, old))

	_, err = s.Save("move.arcm", []byte("<scen:scene/>"))
	require.NoError(t, err)
	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.WithinDuration(t, old, info.ModTime(), time.Second)

	_, err = s.Save("move.arcm", []byte("<scen:scene endframe=\"4\"/>"))
	require.NoError(t, err)
	info, err = os.Stat(p)
	require.NoError(t, err)
	assert.True(t, info.ModTime().After(old.Add(time.Minute)))
}

func TestSaveRejectsEscapingNames(t *testing.T) {
	s, err := New(t.TempDir(), log.NewNop())
	require.NoError(t, err)
	for _, name := range []string{"../x.txt", "..", "a/../../x.txt", "/etc/x.txt", ""} {
		_, err = s.Save(name, nil)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestSaveAcceptsDotPrefixedNames(t *testing.T) {
	s, err := New(t.TempDir(), log.NewNop())
	require.NoError(t, err)

	p, err := s.Save("..take2.txt", []byte("1.0         \n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root(), "..take2.txt"), p)
	_, err = os.Stat(p)
	assert.NoError(t, err)
}
