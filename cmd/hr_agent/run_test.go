package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJobPosting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"title": "Software Engineer",
		"company": "Acme LLC",
		"description": "Build backend services.",
		"required_skills": ["Go"]
	}`), 0o644))

	job, err := loadJobPosting(path)
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", job.Title)
	assert.Equal(t, []string{"Go"}, job.RequiredSkills)
}

func TestLoadJobPosting_Errors(t *testing.T) {
	_, err := loadJobPosting(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = loadJobPosting(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "x"}`), 0o644))
	_, err = loadJobPosting(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty description")
}

func TestCollectCVFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.pdf", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	extra := filepath.Join(t.TempDir(), "extra.docx")
	require.NoError(t, os.WriteFile(extra, []byte("x"), 0o644))

	paths, err := collectCVFiles(dir, []string{extra})
	require.NoError(t, err)

	// Unsupported formats are skipped, the rest is sorted.
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.txt"), paths[1])
	assert.Equal(t, extra, paths[2])
}

func TestCollectCVFiles_UnsupportedExplicitFile(t *testing.T) {
	_, err := collectCVFiles("", []string{"cv.png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported CV format")
}

func TestCollectCVFiles_MissingDir(t *testing.T) {
	_, err := collectCVFiles(filepath.Join(t.TempDir(), "absent"), nil)
	assert.Error(t, err)
}
