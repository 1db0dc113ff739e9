package main

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/russross/blackfriday/v2"
)

func renderMarkdown(in []byte) []byte {
	return blackfriday.Run(in, blackfriday.WithExtensions(blackfriday.CommonExtensions))
}

// markdownHandler renders Markdown files into HTML so the archive and its
// links are browsable in preview mode. Requests for anything other than
// .md fall through to the default handler; "/" redirects to the archive.
func markdownHandler(conf *Conf, defaultHandler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/"+filepath.ToSlash(conf.archiveRel()), http.StatusFound)
			return
		}
		if path.Ext(r.URL.Path) != ".md" {
			defaultHandler.ServeHTTP(w, r)
			return
		}

		p := path.Clean(strings.TrimPrefix(r.URL.Path, "/"))
		if p == ".." || strings.HasPrefix(p, "../") {
			http.NotFound(w, r)
			return
		}
		content, err := os.ReadFile(filepath.Join(conf.RootDir, filepath.FromSlash(p)))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<body>\n%s</body>\n</html>\n", renderMarkdown(content))
	})
}
