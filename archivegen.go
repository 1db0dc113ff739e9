// Archivegen scans directories of dated Markdown posts and renders an
// aggregated archive page from a template: one block per configured
// section plus a rollup of the most recent posts across all of them.
//
// It expects a config.json describing the sections (see Conf), a template
// with {recents}, {body} and {updated_at} slots, and post files whose
// names start with a YYYY-MM-DD date stamp.
package main

import (
	"flag"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/radovskyb/watcher"
)

var confPath = flag.String("conf", "config.json", "Path to the configuration file, relative to the root directory")
var rootDir = flag.String("root", ".", "Site root directory; section and output paths are relative to it")
var serve = flag.Bool("serve", false, "Start a localhost:9999 server for the site, rendering Markdown as HTML")
var watch = flag.Bool("watch", false, "Keep running and re-generate the archive on changes to the section directories.")
var publishDir = flag.String("publish", "", "Copy the archive and section directories to this directory after generating")

func main() {
	flag.Parse()

	conf, err := readConf(*confPath, *rootDir)
	if err != nil {
		log.Fatal(err)
	}

	if err := generate(conf, *publishDir); err != nil {
		log.Fatal(err)
	}

	if *watch && *serve {
		// Run watcher in background while serving
		go regenerateOnChange(conf, *publishDir)
	}

	if *serve {
		serveSite(conf)
	} else if *watch {
		// Watch mode without serve: block on the watcher
		regenerateOnChange(conf, *publishDir)
	}
}

func generate(conf *Conf, publishDir string) error {
	archive, err := ReadArchive(conf)
	if err != nil {
		return err
	}
	if err := archive.WriteAll(); err != nil {
		return err
	}
	if len(publishDir) > 0 {
		return archive.Publish(publishDir)
	}
	return nil
}

func serveSite(conf *Conf) {
	port := ":9999"

	fileServer := http.FileServer(http.Dir(conf.RootDir))
	http.Handle("/", markdownHandler(conf, fileServer))
	log.Printf("Serving %v on %v.", conf.RootDir, port)
	log.Fatal(http.ListenAndServe(port, nil))
}

func regenerateOnChange(conf *Conf, publishDir string) {
	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				// A broken re-run shouldn't kill the watcher.
				if err := generate(conf, publishDir); err != nil {
					log.Println(err)
				}
			case err := <-w.Error:
				log.Println(err)
			case <-w.Closed:
				return
			}
		}
	}()

	for _, s := range conf.Sections {
		dir := filepath.Join(conf.RootDir, s.Dir)
		if err := w.Add(dir); err != nil {
			log.Printf("Not watching %v: %v", dir, err)
		}
	}
	if err := w.Add(filepath.Dir(conf.TemplateFile)); err != nil {
		log.Printf("Not watching %v: %v", filepath.Dir(conf.TemplateFile), err)
	}

	log.Println("Watching for changes...")

	if err := w.Start(time.Millisecond * 200); err != nil {
		log.Fatalln(err)
	}
}
