package covers

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jpegData = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x00, 0xFF, 0xD9}
	pngData  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R', 0, 0, 0, 1, 0, 0, 0, 1}
)

func TestNewStorage(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out", "covers")

	s, err := NewStorage(base)
	require.NoError(t, err)
	require.NotNil(t, s)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewStorage_EmptyPath(t *testing.T) {
	_, err := NewStorage("")
	assert.Error(t, err)
}

func TestStorage_Save(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		data    []byte
		wantExt string
	}{
		{"jpeg", "album-a", jpegData, ".jpg"},
		{"png", "album-b", pngData, ".png"},
		{"unknown", "album-c", []byte{0x00, 0x01, 0x02}, ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := s.Save(tt.id, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.id+tt.wantExt, filepath.Base(path))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestStorage_SaveRejectsEmpty(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save("", jpegData)
	assert.Error(t, err)

	_, err = s.Save("id", nil)
	assert.Error(t, err)
}

func TestStorage_ConcurrentSave(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Go(func() {
			_, err := s.Save(fmt.Sprintf("track-%02d", i), jpegData)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	entries, err := os.ReadDir(s.basePath)
	require.NoError(t, err)
	assert.Len(t, entries, 16)
}
