package main

import (
	"fmt"
	"sort"
	"time"
)

// Layout the 'date' directive must follow, e.g. "05 Jan 2024 10:00:00 +0000".
const dateLayout = "02 Jan 2006 15:04:05 -0700"

// blogEntry is the record kept for one compiled document. Constructed once
// per content.md, immutable afterwards, consumed by the site assembler.
type blogEntry struct {
	URLName         string
	Title           string
	Description     string
	Date            time.Time
	AdditionalFeeds []int
}

func (e *blogEntry) inFeed(feedID int) bool {
	for _, id := range e.AdditionalFeeds {
		if id == feedID {
			return true
		}
	}
	return false
}

type blogEntries []*blogEntry

// sortByDate orders entries most recent first. The RSS feeds and the entry
// list page all render from this one ordering.
func (es blogEntries) sortByDate() {
	sort.Slice(es, func(i, j int) bool { return es[i].Date.After(es[j].Date) })
}

// buildBlogEntry validates the metadata extracted from one document. Title,
// description and a parseable date are mandatory.
func buildBlogEntry(meta *docMeta, path, urlName string) (*blogEntry, error) {
	if meta.Title == "" {
		return nil, fmt.Errorf("input file '%s' is missing title attribute", path)
	}
	if meta.Description == "" {
		return nil, fmt.Errorf("input file '%s' is missing description attribute", path)
	}
	if meta.Date == "" {
		return nil, fmt.Errorf("input file '%s' is missing date attribute", path)
	}

	date, err := time.Parse(dateLayout, meta.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing date attribute in input file '%s': %w", path, err)
	}

	return &blogEntry{
		URLName:         urlName,
		Title:           meta.Title,
		Description:     meta.Description,
		Date:            date,
		AdditionalFeeds: meta.AdditionalFeeds,
	}, nil
}
