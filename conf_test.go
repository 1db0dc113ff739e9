package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReadConfDefaults(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "config.json"), `{}`)

	conf, err := readConf("config.json", root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "archive.md"), conf.ArchiveFile)
	assert.Equal(t, filepath.Join(root, "templates", "archive.md"), conf.TemplateFile)
	assert.Empty(t, conf.Sections)
	assert.Empty(t, conf.FeedFile)
	assert.Equal(t, root, conf.RootDir)
}

func TestReadConfValues(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "config.json"), `{
		"archive_file": "out/archive.md",
		"template_file": "tmpl/archive.md",
		"feed_file": "out/archive.xml",
		"sections": [
			{"dir": "posts", "title": "Posts", "description": "Long-form writing"},
			{"dir": "slogs", "title": "Stream"}
		]
	}`)

	conf, err := readConf("config.json", root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "out", "archive.md"), conf.ArchiveFile)
	assert.Equal(t, filepath.Join(root, "tmpl", "archive.md"), conf.TemplateFile)
	assert.Equal(t, filepath.Join(root, "out", "archive.xml"), conf.FeedFile)

	require.Len(t, conf.Sections, 2)
	assert.Equal(t, Section{Dir: "posts", Title: "Posts", Description: "Long-form writing"}, conf.Sections[0])
	assert.Equal(t, Section{Dir: "slogs", Title: "Stream"}, conf.Sections[1])
}

func TestReadConfMissing(t *testing.T) {
	root := t.TempDir()

	_, err := readConf("config.json", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestReadConfInvalid(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "config.json"), `{"sections": `)

	_, err := readConf("config.json", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestArchiveRel(t *testing.T) {
	root := t.TempDir()

	conf := &Conf{RootDir: root, ArchiveFile: filepath.Join(root, "out", "archive.md")}
	assert.Equal(t, filepath.Join("out", "archive.md"), conf.archiveRel())

	// An archive outside the root falls back to its base name.
	conf = &Conf{RootDir: root, ArchiveFile: filepath.Join(t.TempDir(), "archive.md")}
	assert.Equal(t, "archive.md", conf.archiveRel())
}
