package quizbank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type bankDocument struct {
	Questions []Question `json:"questions"`
}

// ParseBank validates and decodes a question bank document.
// Question IDs must be unique within the document.
func ParseBank(raw []byte) ([]Question, error) {
	if err := validate("bank", bankSchema, raw); err != nil {
		return nil, err
	}
	var doc bankDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if err := checkUniqueIDs(doc.Questions, nil); err != nil {
		return nil, err
	}
	return doc.Questions, nil
}

// LoadBank reads a question bank from a JSON file, or from every *.json file
// in a directory (sorted by name). IDs must be unique across all files.
func LoadBank(path string) ([]Question, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat bank: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(path, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("list bank files: %w", err)
		}
		sort.Strings(files)
	}

	seen := make(map[string]string)
	var all []Question
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read bank %s: %w", f, err)
		}
		qs, err := ParseBank(raw)
		if err != nil {
			return nil, fmt.Errorf("bank %s: %w", filepath.Base(f), err)
		}
		if err := checkUniqueIDs(qs, seen); err != nil {
			return nil, fmt.Errorf("bank %s: %w", filepath.Base(f), err)
		}
		for _, q := range qs {
			seen[q.ID] = f
		}
		all = append(all, qs...)
	}
	return all, nil
}

// ParseRegistry validates and decodes a registry document.
func ParseRegistry(raw []byte) (*Registry, error) {
	if err := validate("registry", registrySchema, raw); err != nil {
		return nil, err
	}
	var r Registry
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	return &r, nil
}

// LoadRegistry reads a registry JSON file.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	r, err := ParseRegistry(raw)
	if err != nil {
		return nil, fmt.Errorf("registry %s: %w", filepath.Base(path), err)
	}
	return r, nil
}

// checkUniqueIDs rejects duplicate IDs within qs or against already-seen IDs.
func checkUniqueIDs(qs []Question, seen map[string]string) error {
	local := make(map[string]bool, len(qs))
	var dups []string
	for _, q := range qs {
		if local[q.ID] {
			dups = append(dups, q.ID)
			continue
		}
		local[q.ID] = true
		if _, ok := seen[q.ID]; ok {
			dups = append(dups, q.ID)
		}
	}
	if len(dups) > 0 {
		return fmt.Errorf("duplicate question ids: %s", strings.Join(dups, ", "))
	}
	return nil
}
