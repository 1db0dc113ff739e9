package main

import "fmt"

// Posts in a directory with this exact name carry their date in the
// filename only, so the rendered line never repeats it.
const undatedDir = "slogs"

// post is the metadata extracted from one source file. Immutable once
// constructed.
type post struct {
	title    string
	filename string
	date     string
	path     string
	dirType  string
}

// line renders the post as a Markdown list item. This is the single
// formatting rule used for both section lists and the recents list.
func (p *post) line() string {
	if p.title == p.date || p.dirType == undatedDir {
		return fmt.Sprintf("- [%s](%s)", p.title, p.path)
	}
	return fmt.Sprintf("- [%s](%s) <small>(%s)</small>", p.title, p.path, p.date)
}

type posts []*post

// Sorting is newest-first by filename, which is date order for the
// conventional YYYY-MM-DD-slug names.
func (ps posts) Len() int           { return len(ps) }
func (ps posts) Swap(i, j int)      { ps[i], ps[j] = ps[j], ps[i] }
func (ps posts) Less(i, j int) bool { return ps[i].filename > ps[j].filename }
