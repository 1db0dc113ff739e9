package main

import (
	"log"
	"os"
	"strings"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

const dateStampFormat = "2006-01-02"

// WriteFeed generates an Atom feed of the recent posts. Unlike the
// archive page, a feed entry needs a real timestamp, so posts whose date
// prefix doesn't parse are skipped with a log line.
func (a *Archive) WriteFeed() error {
	atomXml, err := a.renderFeed()
	if err != nil {
		return err
	}

	if err := os.WriteFile(a.conf.FeedFile, atomXml, os.FileMode(0664)); err != nil {
		return err
	}

	log.Printf("Updated %v", a.conf.FeedFile)
	return nil
}

func (a *Archive) renderFeed() ([]byte, error) {
	feed := atom.Feed{
		Title:   a.conf.SiteTitle,
		Link:    a.conf.BaseUrl,
		PubDate: time.Now(),
	}
	feed.AddAuthor(atom.Author{
		Name: a.conf.Author,
		Uri:  a.conf.AuthorUri,
	})

	for _, p := range a.recentPosts() {
		date, err := time.Parse(dateStampFormat, p.date)
		if err != nil {
			log.Printf("Skipping %v in feed: no date stamp in filename", p.filename)
			continue
		}
		feed.AddEntry(&atom.Entry{
			Title:   p.title,
			Link:    a.conf.BaseUrl + strings.TrimPrefix(p.path, "./"),
			PubDate: date,
		})
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		log.Println("Atom feed is not valid!")
		for _, e := range errs {
			log.Println(e.Error())
		}
		return nil, errs[0]
	}

	return feed.GenXml()
}
