package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fragments bundles the static template snippets shared by every rendered
// page. With no fragments dir configured they are all empty and the
// corresponding page sections are simply omitted.
type fragments struct {
	CSS       string
	Header    string
	Footer    string
	BlogEntry string
	BlogList  string
}

// loadFragments reads the five expected fragment files from dir, trimming
// surrounding whitespace. A configured dir must contain all of them; an
// empty dir argument yields all-empty fragments.
func loadFragments(dir string) (*fragments, error) {
	if dir == "" {
		return &fragments{}, nil
	}

	read := func(name string) (string, error) {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("loading fragment '%s': %w", name, err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	var f fragments
	var err error
	if f.CSS, err = read("style.css"); err != nil {
		return nil, err
	}
	if f.Header, err = read("header.html"); err != nil {
		return nil, err
	}
	if f.Footer, err = read("footer.html"); err != nil {
		return nil, err
	}
	if f.BlogEntry, err = read("blog_entry.html"); err != nil {
		return nil, err
	}
	if f.BlogList, err = read("blog_list.html"); err != nil {
		return nil, err
	}

	return &f, nil
}
