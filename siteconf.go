package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type SiteConf struct {
	BaseURL   string
	InputDir  string
	OutputDir string

	FragmentsDir string

	Language          string
	Favicon           string
	OpenGraphLocale   string
	OpenGraphSiteName string

	// Feed author, only used for the Atom feed.
	Author    string
	AuthorURI string
}

func readConf(fileName string) (*SiteConf, error) {
	rawConf, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("reading site conf '%s': %w", fileName, err)
	}

	conf := SiteConf{}
	if err = json.Unmarshal(rawConf, &conf); err != nil {
		return nil, fmt.Errorf("parsing site conf '%s': %w", fileName, err)
	}

	if conf.BaseURL == "" {
		return nil, fmt.Errorf("site conf '%s' is missing BaseURL", fileName)
	}
	if conf.InputDir == "" {
		return nil, fmt.Errorf("site conf '%s' is missing InputDir", fileName)
	}
	if conf.OutputDir == "" {
		return nil, fmt.Errorf("site conf '%s' is missing OutputDir", fileName)
	}

	// Normalize relative paths because the executable can be called from anywhere.
	baseDir := filepath.Dir(fileName)
	conf.InputDir = normalizePath(conf.InputDir, baseDir)
	conf.OutputDir = normalizePath(conf.OutputDir, baseDir)
	if conf.FragmentsDir != "" {
		conf.FragmentsDir = normalizePath(conf.FragmentsDir, baseDir)
	}

	return &conf, nil
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}
