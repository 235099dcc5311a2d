// Package store loads the contact directory from disk and publishes it to
// concurrent readers.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hotline/internal/directory/models"
	dErrors "hotline/pkg/domain-errors"
	textutil "hotline/pkg/platform/strings"
)

// document is the on-disk shape. JSON files parse too, since JSON is a
// subset of YAML.
type document struct {
	Contacts []*models.Contact `yaml:"contacts"`
}

// LoadFile reads and validates a directory file.
func LoadFile(path string, loadedAt time.Time) (*models.Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	return Parse(data, path, loadedAt)
}

// Parse decodes a directory document, normalizes every contact and parses
// its hours once. Unknown fields and unknown service tags are rejected so a
// typo in the file fails the load instead of silently dropping a contact
// from every search.
func Parse(data []byte, source string, loadedAt time.Time) (*models.Directory, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decode directory "+source)
	}

	seen := make(map[string]struct{}, len(doc.Contacts))
	for i, c := range doc.Contacts {
		if c == nil {
			return nil, dErrors.Newf(dErrors.CodeValidation, "contacts[%d]: empty entry", i)
		}
		if err := normalize(c); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("contacts[%d]", i))
		}
		if _, dup := seen[c.Name]; dup {
			return nil, dErrors.Newf(dErrors.CodeValidation, "contacts[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	return models.NewDirectory(doc.Contacts, source, loadedAt), nil
}

func normalize(c *models.Contact) error {
	if c.Name == "" {
		return dErrors.Field("name", "is required")
	}
	for _, s := range c.Services {
		if !s.IsValid() {
			return dErrors.Field("services", fmt.Sprintf("unknown service %q for %s", s, c.Name))
		}
	}
	c.Coverage = textutil.DedupeAndTrim(c.Coverage)
	c.Schedule = models.ParseSchedule(c.Hours)
	return nil
}
