package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
)

// site accumulates everything one full run produces: the compiled entries
// and the feed registry. The feed tracker is the only state shared across
// document compilations.
type site struct {
	conf    *SiteConf
	frags   *fragments
	feeds   *feedTracker
	entries blogEntries
}

// buildSite runs one complete compilation: reset the output dir, compile
// every entry subdirectory, then assemble the feeds and the list page.
// The first error aborts the whole run.
func buildSite(conf *SiteConf) error {
	frags, err := loadFragments(conf.FragmentsDir)
	if err != nil {
		return err
	}

	s := &site{
		conf:  conf,
		frags: frags,
		feeds: newFeedTracker(),
	}

	// The output dir is rebuilt from scratch on every run.
	if err := os.RemoveAll(conf.OutputDir); err != nil {
		return fmt.Errorf("clearing output dir '%s': %w", conf.OutputDir, err)
	}
	if err := os.MkdirAll(conf.OutputDir, 0o775); err != nil {
		return fmt.Errorf("creating output dir '%s': %w", conf.OutputDir, err)
	}

	if err := s.compileAll(); err != nil {
		return err
	}

	s.entries.sortByDate()

	return s.assemble()
}

// compileAll walks the input root. The layout is flat: one subdirectory per
// entry, nothing else. Plain files at the root and anything named index.*
// are configuration errors.
func (s *site) compileAll() error {
	rootEntries, err := os.ReadDir(s.conf.InputDir)
	if err != nil {
		return fmt.Errorf("opening input dir '%s': %w", s.conf.InputDir, err)
	}

	for _, rootEntry := range rootEntries {
		name := rootEntry.Name()
		path := filepath.Join(s.conf.InputDir, name)

		if stem := strings.TrimSuffix(name, filepath.Ext(name)); stem == "index" {
			return fmt.Errorf("file '%s' should not be named 'index.*'", path)
		}
		if !rootEntry.IsDir() {
			return fmt.Errorf("found file '%s' at root level in input directory", path)
		}

		if err := s.compileDir(name, path); err != nil {
			return err
		}
	}

	return nil
}

// compileDir processes one entry subdirectory: content.md becomes the
// entry's index.html, every other file is copied through unchanged.
func (s *site) compileDir(urlName, dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("opening dir '%s': %w", dirPath, err)
	}

	outDir := filepath.Join(s.conf.OutputDir, urlName)
	if err := os.MkdirAll(outDir, 0o775); err != nil {
		return fmt.Errorf("creating output dir '%s': %w", outDir, err)
	}

	for _, file := range files {
		name := file.Name()
		path := filepath.Join(dirPath, name)

		if filepath.Ext(name) != ".md" {
			outPath := filepath.Join(outDir, name)
			if err := copy.Copy(path, outPath); err != nil {
				return fmt.Errorf("copying input file '%s' to '%s': %w", path, outPath, err)
			}
			continue
		}

		if name != "content.md" {
			return fmt.Errorf("markdown file '%s' is not named 'content.md'", path)
		}

		if err := s.compileDocument(path, urlName, filepath.Join(outDir, "index.html")); err != nil {
			return err
		}
	}

	return nil
}

// compileDocument turns one content.md into a finished HTML page and
// records its blog entry for the assembler.
func (s *site) compileDocument(path, urlName, outPath string) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input file '%s': %w", path, err)
	}

	meta := &docMeta{}
	body := renderMarkdown(input, meta, s.feeds)

	entry, err := buildBlogEntry(meta, path, urlName)
	if err != nil {
		return err
	}
	s.entries = append(s.entries, entry)

	page, err := buildPage(s.conf, s.frags, meta, entry, body)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(page), 0o664); err != nil {
		return fmt.Errorf("writing HTML to path '%s': %w", outPath, err)
	}

	return nil
}

// assemble writes the RSS documents, the Atom mirror and the entry list
// page once every document has been compiled and sorted.
func (s *site) assemble() error {
	if err := s.writeRSS("feed", nil); err != nil {
		return err
	}
	for feedName, feedID := range s.feeds.ids {
		id := feedID
		if err := s.writeRSS(feedName, &id); err != nil {
			return err
		}
	}

	if err := s.renderAtom(); err != nil {
		return err
	}

	listPage, err := formatBlogList(s.conf, s.frags, s.entries)
	if err != nil {
		return err
	}
	listPath := filepath.Join(s.conf.OutputDir, "index.html")
	if err := os.WriteFile(listPath, []byte(listPage), 0o664); err != nil {
		return fmt.Errorf("writing blog entry list '%s': %w", listPath, err)
	}

	return nil
}

func (s *site) writeRSS(feedName string, feedID *int) error {
	rss := formatRSS(s.conf, s.entries, feedID)

	path := filepath.Join(s.conf.OutputDir, feedName+".rss")
	if err := os.WriteFile(path, []byte(rss), 0o664); err != nil {
		return fmt.Errorf("writing RSS feed file '%s': %w", path, err)
	}
	return nil
}
