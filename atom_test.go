package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFeed(t *testing.T) {
	conf := buildTestSite(t)
	conf.FeedFile = filepath.Join(conf.RootDir, "archive.xml")
	conf.SiteTitle = "Test Site"
	conf.BaseUrl = "https://example.com/"
	conf.Author = "Joe User"
	conf.AuthorUri = "https://example.com/"

	// A file without a date stamp is fine for the archive, but the feed
	// has to skip it.
	writeTestFile(t, filepath.Join(conf.RootDir, "posts", "undated.md"), "# No Stamp\n")

	archive, err := ReadArchive(conf)
	require.NoError(t, err)
	require.NoError(t, archive.WriteFeed())

	raw, err := os.ReadFile(conf.FeedFile)
	require.NoError(t, err)
	feed := string(raw)

	assert.Contains(t, feed, "Test Site")
	assert.Contains(t, feed, "Hello World")
	assert.Contains(t, feed, "https://example.com/posts/2024-03-01-hello.md")
	assert.NotContains(t, feed, "No Stamp")
}

func TestWriteAllWithoutFeed(t *testing.T) {
	conf := buildTestSite(t)

	archive, err := ReadArchive(conf)
	require.NoError(t, err)
	require.NoError(t, archive.WriteAll())

	assert.FileExists(t, conf.ArchiveFile)
	assert.NoFileExists(t, filepath.Join(conf.RootDir, "archive.xml"))
}
