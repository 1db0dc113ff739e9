package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// findPostFiles lists the Markdown files in one section directory, newest
// first by name. Matching is flat; subdirectories are not searched.
func findPostFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

// parsePost extracts the post metadata from one file. dir is the owning
// section's configured directory, which becomes part of the link path.
// A file that can't be read still yields a post; its filename serves as
// the title.
func parsePost(path, dir string) *post {
	filename := filepath.Base(path)

	title := filename
	if first, err := readFirstLine(path); err == nil && strings.HasPrefix(first, "# ") {
		title = strings.TrimPrefix(first, "# ")
	}

	// The date is whatever the first 10 characters of the name are.
	// Nothing validates it as a real date.
	date := filename
	if len(filename) > 10 {
		date = filename[:10]
	}

	return &post{
		title:    title,
		filename: filename,
		date:     date,
		path:     "./" + dir + "/" + filename,
		dirType:  dir,
	}
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, " \t\r\n"), nil
}
