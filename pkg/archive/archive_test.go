package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndExtractAll(t *testing.T) {
	tempDir := t.TempDir()

	testFiles := map[string]string{
		"bin/tool":             "#!/bin/sh\necho hi\n",
		"share/doc/readme.txt": "docs",
		"share/data.json":      `{"ok":true}`,
	}

	sourceDir := filepath.Join(tempDir, "source")
	for path, content := range testFiles {
		fullPath := filepath.Join(sourceDir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}

	am := NewManager()
	ctx := context.Background()

	archivePath := filepath.Join(tempDir, "artifact.tar.gz")
	require.NoError(t, am.Create(ctx, sourceDir, archivePath))
	require.FileExists(t, archivePath)

	extractDir := filepath.Join(tempDir, "extracted")
	require.NoError(t, am.ExtractAll(ctx, archivePath, extractDir))

	for path, expected := range testFiles {
		content, err := os.ReadFile(filepath.Join(extractDir, path))
		require.NoError(t, err, "file %s was not extracted", path)
		assert.Equal(t, expected, string(content))
	}
}

func TestManager_ExtractPreservesExecutableBit(t *testing.T) {
	tempDir := t.TempDir()

	sourceDir := filepath.Join(tempDir, "source")
	require.NoError(t, os.MkdirAll(sourceDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "run"), []byte("#!/bin/sh\n"), 0o755))

	am := NewManager()
	ctx := context.Background()

	archivePath := filepath.Join(tempDir, "exe.tar.gz")
	require.NoError(t, am.Create(ctx, sourceDir, archivePath))

	extractDir := filepath.Join(tempDir, "extracted")
	require.NoError(t, am.ExtractAll(ctx, archivePath, extractDir))

	info, err := os.Stat(filepath.Join(extractDir, "run"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100, "executable bit lost during extraction")
}

func TestManager_ExtractAll_MissingArchive(t *testing.T) {
	am := NewManager()
	err := am.ExtractAll(context.Background(), filepath.Join(t.TempDir(), "missing.tar.gz"), t.TempDir())
	assert.Error(t, err)
}
