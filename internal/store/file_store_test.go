package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsd/internal/models"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStore_WriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	s := NewFileStore(path)

	require.NoError(t, s.Write(&testDoc{Name: "a", Count: 3}))

	var got testDoc
	require.NoError(t, s.Read(&got))
	assert.Equal(t, "a", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestFileStore_Read_MissingFileIsNotFound(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	var got testDoc
	err := s.Read(&got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestFileStore_Write_NoTempFileLeftBehind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	s := NewFileStore(path)

	require.NoError(t, s.Write(&testDoc{Name: "a"}))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_Write_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "doc.json")
	s := NewFileStore(path)

	require.NoError(t, s.Write(&testDoc{Name: "a"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_Update_MissingFileStartsFromDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	s := NewFileStore(path)

	doc := testDoc{Name: "default"}
	err := s.Update(&doc, func() error {
		doc.Count++
		return nil
	})
	require.NoError(t, err)

	var got testDoc
	require.NoError(t, s.Read(&got))
	assert.Equal(t, "default", got.Name)
	assert.Equal(t, 1, got.Count)
}

func TestFileStore_Update_ApplyErrorWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	s := NewFileStore(path)
	require.NoError(t, s.Write(&testDoc{Count: 5}))

	var doc testDoc
	err := s.Update(&doc, func() error {
		doc.Count = 99
		return models.ErrNotFound
	})
	require.Error(t, err)

	var got testDoc
	require.NoError(t, s.Read(&got))
	assert.Equal(t, 5, got.Count)
}

func TestFileStore_Update_ConcurrentIncrementsSerialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	s := NewFileStore(path)
	require.NoError(t, s.Write(&testDoc{Count: 0}))

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			var doc testDoc
			err := s.Update(&doc, func() error {
				doc.Count++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var got testDoc
	require.NoError(t, s.Read(&got))
	assert.Equal(t, workers, got.Count)
}
