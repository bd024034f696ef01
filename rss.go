package main

import (
	"fmt"
	"strings"
	"time"
)

// formatRSS renders one RSS 2.0 document. A nil feedID means the main feed:
// every entry is included. Otherwise only entries belonging to that feed
// make it in. Entries must already be sorted most recent first; filtering
// never reorders.
func formatRSS(conf *SiteConf, entries blogEntries, feedID *int) string {
	var items strings.Builder
	for _, entry := range entries {
		if feedID != nil && !entry.inFeed(*feedID) {
			continue
		}

		fmt.Fprintf(&items, "<item>\n")
		fmt.Fprintf(&items, "\t<title>%s</title>\n", entry.Title)
		// Descriptions are emitted raw, exactly as authored.
		fmt.Fprintf(&items, "\t<description>%s</description>\n", entry.Description)
		fmt.Fprintf(&items, "\t<pubDate>%s</pubDate>\n", entry.Date.Format(time.RFC1123Z))
		fmt.Fprintf(&items, "\t<link>%s/%s</link>\n", conf.BaseURL, entry.URLName)
		fmt.Fprintf(&items, "</item>\n")
	}

	language := conf.Language
	if language == "" {
		language = "en_US"
	}

	var rss strings.Builder
	rss.WriteString("<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(&rss, "<!--RSS generated %s by flocblog %s-->\n", time.Now().UTC().Format(time.RFC1123Z), version)
	rss.WriteString("<rss version=\"2.0\">\n")
	rss.WriteString("<channel>\n")
	fmt.Fprintf(&rss, "<language>%s</language>\n", language)
	fmt.Fprintf(&rss, "<title>%s</title>\n", conf.OpenGraphSiteName)
	fmt.Fprintf(&rss, "<generator>flocblog %s</generator>\n", version)
	rss.WriteString("\n")
	rss.WriteString(items.String())
	rss.WriteString("</channel>\n")
	rss.WriteString("</rss>\n")

	return rss.String()
}
