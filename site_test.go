package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o775))
	require.NoError(t, os.WriteFile(path, content, 0o664))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func newTestConf(t *testing.T) *SiteConf {
	t.Helper()
	root := t.TempDir()
	return &SiteConf{
		BaseURL:           "https://example.org/blog",
		InputDir:          filepath.Join(root, "in"),
		OutputDir:         filepath.Join(root, "out"),
		Language:          "en",
		OpenGraphSiteName: "Example Blog",
		Author:            "Jo",
	}
}

const post1Content = `<!--title: Hello-->
<!--description: World-->
<!--date: 01 Jan 2024 00:00:00 +0000-->

# Hello

Body text.
`

const post2Content = `<!--title: Second-->
<!--description: Another-->
<!--date: 05 Feb 2024 12:00:00 +0000-->
<!--additional-feed: tech-->

More text.
`

func TestBuildSite(t *testing.T) {
	t.Parallel()

	t.Run("end to end", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)
		conf.FragmentsDir = writeFragmentDir(t, map[string]string{
			"style.css":       "body { color: red; }",
			"header.html":     "<header><h1>$TITLE$</h1><p>$DATE$</p></header>",
			"footer.html":     "<footer>bye</footer>",
			"blog_entry.html": `<article><a href="$LINK$">$TITLE$</a><p>$DESCRIPTION$</p><time>$DATE$</time></article>`,
			"blog_list.html":  "<main>$ENTRIES$</main>",
		})

		asset := []byte{0x00, 0x01, 0xff, 0xfe, 'g', 'o'}
		writeFile(t, filepath.Join(conf.InputDir, "post1", "content.md"), []byte(post1Content))
		writeFile(t, filepath.Join(conf.InputDir, "post1", "photo.bin"), asset)
		writeFile(t, filepath.Join(conf.InputDir, "post2", "content.md"), []byte(post2Content))

		// A stale output tree must be wiped by the run.
		writeFile(t, filepath.Join(conf.OutputDir, "stale.txt"), []byte("old"))

		require.NoError(t, buildSite(conf))

		_, err := os.Stat(filepath.Join(conf.OutputDir, "stale.txt"))
		assert.True(t, os.IsNotExist(err))

		// Per-entry page.
		page := readFile(t, filepath.Join(conf.OutputDir, "post1", "index.html"))
		assert.Contains(t, page, "<title>Hello</title>")
		assert.Contains(t, page, `<html lang="en">`)
		assert.Contains(t, page, "<h1>Hello</h1>")
		assert.Contains(t, page, "Monday the 1st of January 2024")
		assert.Contains(t, page, "<footer>bye</footer>")
		assert.Contains(t, page, "body { color: red; }")

		// Assets are copied byte for byte.
		copied, err := os.ReadFile(filepath.Join(conf.OutputDir, "post1", "photo.bin"))
		require.NoError(t, err)
		assert.Equal(t, asset, copied)

		// Main feed holds both entries, newest first.
		feed := readFile(t, filepath.Join(conf.OutputDir, "feed.rss"))
		assert.Equal(t, 2, strings.Count(feed, "<item>"))
		assert.Contains(t, feed, "<title>Hello</title>")
		assert.Contains(t, feed, "<title>Second</title>")
		assert.Less(t, strings.Index(feed, "<title>Second</title>"), strings.Index(feed, "<title>Hello</title>"))
		assert.Contains(t, feed, "<link>https://example.org/blog/post1</link>")

		// The named feed only holds its member.
		tech := readFile(t, filepath.Join(conf.OutputDir, "tech.rss"))
		assert.Equal(t, 1, strings.Count(tech, "<item>"))
		assert.Contains(t, tech, "<title>Second</title>")
		assert.NotContains(t, tech, "<title>Hello</title>")

		// Atom mirror of the main feed.
		atomFeed := readFile(t, filepath.Join(conf.OutputDir, "feed.atom"))
		assert.Contains(t, atomFeed, "Hello")
		assert.Contains(t, atomFeed, "Second")

		// List page, newest first, wrapped in the list fragment.
		list := readFile(t, filepath.Join(conf.OutputDir, "index.html"))
		assert.True(t, strings.HasPrefix(list, "<main>"))
		assert.Contains(t, list, `<a href="https://example.org/blog/post1">Hello</a>`)
		assert.Contains(t, list, `<a href="https://example.org/blog/post2">Second</a>`)
		assert.Less(t, strings.Index(list, "Second"), strings.Index(list, "Hello"))
	})

	t.Run("works without a fragments dir", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)
		writeFile(t, filepath.Join(conf.InputDir, "post1", "content.md"), []byte(post1Content))

		require.NoError(t, buildSite(conf))

		page := readFile(t, filepath.Join(conf.OutputDir, "post1", "index.html"))
		assert.Contains(t, page, "<title>Hello</title>")
		assert.NotContains(t, page, "<style>")

		// An empty blog_list fragment renders an empty list page.
		assert.Equal(t, "", readFile(t, filepath.Join(conf.OutputDir, "index.html")))
	})

	t.Run("root-level file is fatal", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)
		writeFile(t, filepath.Join(conf.InputDir, "stray.txt"), []byte("x"))

		err := buildSite(conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root level")
	})

	t.Run("index-named input entry is fatal", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)
		writeFile(t, filepath.Join(conf.InputDir, "index", "content.md"), []byte(post1Content))

		err := buildSite(conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index")
	})

	t.Run("misnamed markdown file is fatal", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)
		writeFile(t, filepath.Join(conf.InputDir, "post1", "notes.md"), []byte(post1Content))

		err := buildSite(conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content.md")
	})

	t.Run("document missing a title aborts the run", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)
		writeFile(t, filepath.Join(conf.InputDir, "post1", "content.md"),
			[]byte("<!--description: World-->\n<!--date: 01 Jan 2024 00:00:00 +0000-->\n\ntext\n"))

		err := buildSite(conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "content.md")
	})

	t.Run("document with a bad date aborts the run", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)
		writeFile(t, filepath.Join(conf.InputDir, "post1", "content.md"),
			[]byte("<!--title: T-->\n<!--description: D-->\n<!--date: not a date-->\n\ntext\n"))

		err := buildSite(conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "date")
	})

	t.Run("missing input dir is fatal", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)

		err := buildSite(conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), conf.InputDir)
	})

	t.Run("feed ids are shared across documents", func(t *testing.T) {
		t.Parallel()
		conf := newTestConf(t)
		writeFile(t, filepath.Join(conf.InputDir, "post1", "content.md"),
			[]byte("<!--title: A-->\n<!--description: a-->\n<!--date: 01 Jan 2024 00:00:00 +0000-->\n<!--additional-feed: tech-->\n\ntext\n"))
		writeFile(t, filepath.Join(conf.InputDir, "post2", "content.md"),
			[]byte("<!--title: B-->\n<!--description: b-->\n<!--date: 02 Jan 2024 00:00:00 +0000-->\n<!--additional-feed: tech-->\n\ntext\n"))

		require.NoError(t, buildSite(conf))

		tech := readFile(t, filepath.Join(conf.OutputDir, "tech.rss"))
		assert.Equal(t, 2, strings.Count(tech, "<item>"))
	})
}
