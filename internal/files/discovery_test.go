package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindExcelFiles(t *testing.T) {
	t.Run("missing folder is fatal", func(t *testing.T) {
		_, err := FindExcelFiles(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingFolder)
	})

	t.Run("folder without workbooks is fatal", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
		_, err := FindExcelFiles(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoFiles)
	})

	t.Run("finds xlsx files sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"b.xlsx", "a.XLSX", "c.csv", "~$a.xlsx"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.xlsx"), 0755))

		paths, err := FindExcelFiles(dir)
		require.NoError(t, err)
		require.Len(t, paths, 2)
		assert.Equal(t, filepath.Join(dir, "a.XLSX"), paths[0])
		assert.Equal(t, filepath.Join(dir, "b.xlsx"), paths[1])
	})
}
