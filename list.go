package main

import (
	"fmt"
	"strings"
)

// formatBlogList renders the entry list page: every entry goes through the
// blog_entry fragment, the results are concatenated and wrapped in the
// blog_list fragment under ENTRIES.
func formatBlogList(conf *SiteConf, frags *fragments, entries blogEntries) (string, error) {
	var formatted strings.Builder
	for _, entry := range entries {
		block, err := formatTemplate(frags.BlogEntry, map[string]string{
			"TITLE":       entry.Title,
			"DESCRIPTION": entry.Description,
			"DATE":        formatHumanDate(entry.Date),
			"LINK":        fmt.Sprintf("%s/%s", conf.BaseURL, entry.URLName),
		})
		if err != nil {
			return "", err
		}
		formatted.WriteString(block)
	}

	return formatTemplate(frags.BlogList, map[string]string{
		"ENTRIES": formatted.String(),
	})
}
