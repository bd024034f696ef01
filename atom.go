package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

// renderAtom writes feed.atom, an Atom mirror of the main RSS feed with the
// same entries in the same order.
func (s *site) renderAtom() error {
	feed := atom.Feed{
		Title:   s.conf.OpenGraphSiteName,
		Link:    s.conf.BaseURL,
		PubDate: time.Now(),
	}
	if s.conf.Author != "" {
		feed.AddAuthor(atom.Author{
			Name: s.conf.Author,
			Uri:  s.conf.AuthorURI,
		})
	}

	for _, entry := range s.entries {
		feed.AddEntry(&atom.Entry{
			Title:       entry.Title,
			Description: entry.Description,
			Link:        s.conf.BaseURL + "/" + entry.URLName,
			PubDate:     entry.Date,
		})
	}

	atomXml, err := feed.GenXml()
	if err != nil {
		return fmt.Errorf("generating atom feed: %w", err)
	}

	path := filepath.Join(s.conf.OutputDir, "feed.atom")
	if err := os.WriteFile(path, atomXml, 0o664); err != nil {
		return fmt.Errorf("writing atom feed '%s': %w", path, err)
	}
	return nil
}
