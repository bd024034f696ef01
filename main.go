// flocblog is a small bare bones static blog generator. It compiles a
// directory of markdown documents into per-entry HTML pages, RSS and Atom
// feeds, and an index page listing every entry.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/radovskyb/watcher"
)

const version = "0.0.1"

var confPath = flag.String("conf", "flocblog.json", "Path to the site configuration file")
var serve = flag.Bool("serve", false, "Start a localhost:9999 server for the generated site")
var watch = flag.Bool("watch", false, "Keep running and regenerate the site on changes to the input directory.")

func main() {
	flag.Parse()

	conf, err := readConf(*confPath)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Writing site to " + conf.OutputDir)
	if err := buildSite(conf); err != nil {
		log.Fatal(err)
	}

	if *watch && *serve {
		// Run watcher in background while serving
		go rebuildOnChange(conf)
	}

	if *serve {
		serveSite(conf.OutputDir)
	} else if *watch {
		// Watch mode without serve: block on the watcher
		rebuildOnChange(conf)
	}
}

func serveSite(dir string) {
	port := ":9999"

	http.Handle("/", http.FileServer(http.Dir(dir)))
	log.Printf("Serving %v on %v.", dir, port)
	log.Fatal(http.ListenAndServe(port, nil))
}

func rebuildOnChange(conf *SiteConf) {
	log.Println("Watching " + conf.InputDir + " for changes...")

	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				if err := buildSite(conf); err != nil {
					log.Fatal(err)
				}
			case err := <-w.Error:
				log.Println(err)
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.AddRecursive(conf.InputDir); err != nil {
		log.Fatalln(err)
	}

	if err := w.Start(time.Millisecond * 200); err != nil {
		log.Fatalln(err)
	}
}
