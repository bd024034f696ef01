package main

import (
	"fmt"
	"strings"
	"time"
)

// formatHumanDate renders a date like "Friday the 5th of January 2024".
// Days 1-3 get their proper suffix; every other day gets a generic "th",
// the 21st and friends included. Downstream templates assume exactly this.
func formatHumanDate(d time.Time) string {
	suffix := "th"
	switch d.Day() {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}

	return fmt.Sprintf("%s the %d%s of %s %d", d.Weekday(), d.Day(), suffix, d.Month(), d.Year())
}

// buildPage assembles the finished HTML document around the rendered
// markdown body: doctype, head metadata in a fixed order, inline CSS, the
// templated header fragment, the body, and the verbatim footer fragment.
func buildPage(conf *SiteConf, frags *fragments, meta *docMeta, entry *blogEntry, body string) (string, error) {
	var out strings.Builder

	out.WriteString("<!DOCTYPE html>\n")
	if conf.Language != "" {
		fmt.Fprintf(&out, "<html lang=\"%s\">\n", conf.Language)
	}

	out.WriteString("\n<head>\n")
	out.WriteString("<meta charset=\"UTF-8\">\n")
	if meta.Title != "" {
		fmt.Fprintf(&out, "<title>%s</title>\n", meta.Title)
	}
	if conf.Favicon != "" {
		fmt.Fprintf(&out, "<link rel=\"shortcut icon\" type=\"image/png\" href=\"%s\" />\n", conf.Favicon)
	}
	if meta.Description != "" {
		fmt.Fprintf(&out, "<meta name=\"description\" content=\"%s\" />\n", meta.Description)
		fmt.Fprintf(&out, "<meta property=\"og:title\" content=\"%s\" />\n", meta.Title)
		fmt.Fprintf(&out, "<meta property=\"og:description\" content=\"%s\" />\n", meta.Description)
	}
	if conf.Favicon != "" {
		fmt.Fprintf(&out, "<meta name=\"og:image\" content=\"%s\">\n", conf.Favicon)
	}
	if meta.Author != "" {
		fmt.Fprintf(&out, "<meta name=\"author\" content=\"%s\" />\n", meta.Author)
	}
	if conf.OpenGraphLocale != "" {
		fmt.Fprintf(&out, "<meta property=\"og:locale\" content=\"%s\" />\n", conf.OpenGraphLocale)
	}
	if conf.OpenGraphSiteName != "" {
		fmt.Fprintf(&out, "<meta property=\"og:site_name\" content=\"%s\" />\n", conf.OpenGraphSiteName)
	}

	if frags.CSS != "" {
		out.WriteString("<style>\n")
		out.WriteString(frags.CSS)
		out.WriteString("\n</style>\n")
	}

	out.WriteString("</head>\n\n")

	if frags.Header != "" {
		header, err := formatTemplate(frags.Header, map[string]string{
			"TITLE":       entry.Title,
			"DESCRIPTION": entry.Description,
			"DATE":        formatHumanDate(entry.Date),
		})
		if err != nil {
			return "", err
		}
		out.WriteString(header)
		out.WriteString("\n\n")
	}

	out.WriteString(body)

	if frags.Footer != "" {
		out.WriteString("\n\n")
		out.WriteString(frags.Footer)
	}

	return out.String(), nil
}
