package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Section is one configured directory of posts, rendered as one labeled
// block in the archive. Order in the config determines output order;
// duplicate dirs are not rejected and simply duplicate output.
type Section struct {
	Dir         string `json:"dir"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Conf struct {
	ArchiveFile  string    `json:"archive_file"`
	TemplateFile string    `json:"template_file"`
	Sections     []Section `json:"sections"`

	// Feed settings. An empty FeedFile disables the Atom feed.
	FeedFile  string `json:"feed_file"`
	SiteTitle string `json:"site_title"`
	BaseUrl   string `json:"base_url"`
	Author    string `json:"author"`
	AuthorUri string `json:"author_uri"`

	// RootDir is the site root all relative paths resolve against. It
	// comes from the command line, not the config file.
	RootDir string `json:"-"`
}

func readConf(fileName, rootDir string) (*Conf, error) {
	path := normalizePath(fileName, rootDir)
	rawConf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found at %v: %v", path, err)
	}

	conf := Conf{}
	if err = json.Unmarshal(rawConf, &conf); err != nil {
		return nil, fmt.Errorf("invalid config %v: %v", path, err)
	}

	// Populate with defaults
	if len(conf.ArchiveFile) == 0 {
		conf.ArchiveFile = "archive.md"
	}
	if len(conf.TemplateFile) == 0 {
		conf.TemplateFile = "templates/archive.md"
	}

	// Normalize paths because the executable can be called from anywhere.
	// Section dirs stay relative; they double as link targets.
	conf.RootDir = rootDir
	conf.ArchiveFile = normalizePath(conf.ArchiveFile, rootDir)
	conf.TemplateFile = normalizePath(conf.TemplateFile, rootDir)
	if len(conf.FeedFile) > 0 {
		conf.FeedFile = normalizePath(conf.FeedFile, rootDir)
	}

	return &conf, nil
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}

// archiveRel is the archive file's path relative to the root, used for
// publishing and for the serve-mode index redirect. An archive configured
// outside the root falls back to its base name.
func (c *Conf) archiveRel() string {
	rel, err := filepath.Rel(c.RootDir, c.ArchiveFile)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(c.ArchiveFile)
	}
	return rel
}
