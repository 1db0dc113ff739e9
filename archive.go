package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	cp "github.com/otiai10/copy"
)

// The recents block holds at most this many posts.
const maxRecentPosts = 10

type sectionPosts struct {
	section Section
	posts   posts
}

// Archive holds everything scanned from the section directories, ready to
// be rendered.
type Archive struct {
	conf     *Conf
	sections []sectionPosts
	all      posts
}

// ReadArchive scans every configured section in order. Sections with no
// matching files are skipped silently and contribute nothing to the
// recents pool.
func ReadArchive(conf *Conf) (*Archive, error) {
	a := &Archive{
		conf: conf,
		all:  make(posts, 0, 100),
	}

	for _, s := range conf.Sections {
		files, err := findPostFiles(filepath.Join(conf.RootDir, s.Dir))
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			continue
		}

		ps := make(posts, 0, len(files))
		for _, f := range files {
			p := parsePost(f, s.Dir)
			ps = append(ps, p)
			a.all = append(a.all, p)
		}
		a.sections = append(a.sections, sectionPosts{s, ps})
	}

	return a, nil
}

// recentPosts re-sorts all posts globally by filename, newest first,
// independent of section order, and keeps the top entries.
func (a *Archive) recentPosts() posts {
	recent := make(posts, len(a.all))
	copy(recent, a.all)
	sort.Sort(recent)
	if len(recent) > maxRecentPosts {
		recent = recent[:maxRecentPosts]
	}
	return recent
}

func (a *Archive) body() string {
	blocks := make([]string, len(a.sections))
	for i, sp := range a.sections {
		blocks[i] = renderSection(sp.section, sp.posts)
	}
	return strings.Join(blocks, "\n")
}

// WriteArchive renders the template and overwrites the archive file in
// full. The template is read before anything is written, so a missing
// template leaves the previous archive untouched.
func (a *Archive) WriteArchive() error {
	tmpl, err := os.ReadFile(a.conf.TemplateFile)
	if err != nil {
		return fmt.Errorf("template not found at %v: %v", a.conf.TemplateFile, err)
	}

	recent := a.recentPosts()
	content, err := expandTemplate(string(tmpl), map[string]string{
		"recents":    renderPostList(recent),
		"body":       a.body(),
		"updated_at": formatTimestamp(time.Now()),
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(a.conf.ArchiveFile, []byte(content), os.FileMode(0664)); err != nil {
		return err
	}

	log.Printf("Updated %v (%v recent items)", a.conf.ArchiveFile, len(recent))
	return nil
}

// WriteAll writes the archive file and, if configured, the Atom feed.
func (a *Archive) WriteAll() error {
	if err := a.WriteArchive(); err != nil {
		return err
	}
	if len(a.conf.FeedFile) > 0 {
		return a.WriteFeed()
	}
	return nil
}

// Publish copies the section directories and the generated files into
// destDir, preserving the relative layout so archive links keep
// resolving.
func (a *Archive) Publish(destDir string) error {
	log.Println("Publishing to " + destDir)

	for _, sp := range a.sections {
		src := filepath.Join(a.conf.RootDir, sp.section.Dir)
		if err := cp.Copy(src, filepath.Join(destDir, sp.section.Dir)); err != nil {
			return err
		}
	}

	if err := cp.Copy(a.conf.ArchiveFile, filepath.Join(destDir, a.conf.archiveRel())); err != nil {
		return err
	}
	if len(a.conf.FeedFile) > 0 {
		rel, err := filepath.Rel(a.conf.RootDir, a.conf.FeedFile)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = filepath.Base(a.conf.FeedFile)
		}
		if err := cp.Copy(a.conf.FeedFile, filepath.Join(destDir, rel)); err != nil {
			return err
		}
	}
	return nil
}
