package editor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/amonks/work/internal/strings"
	"github.com/amonks/work/work"
)

// ErrNameChanged is returned when an edited document renames an existing entry.
var ErrNameChanged = errors.New("the name of an existing entry cannot be changed")

// EntryData represents the data used to render the TOML template.
type EntryData struct {
	// IsUpdate is true when editing an existing entry.
	IsUpdate bool
	// ID is the entry ID (only for updates).
	ID string
	// Name is the entry name.
	Name string
	// Status is the entry status (only for updates).
	Status string
	// Description is the entry description.
	Description string
}

// DefaultCreateData returns EntryData for a new entry, optionally pre-filled.
func DefaultCreateData(name, description string) EntryData {
	return EntryData{
		Name:        name,
		Description: description,
	}
}

// DataFromEntry creates EntryData from an existing entry for editing.
func DataFromEntry(e *work.Entry) EntryData {
	return EntryData{
		IsUpdate:    true,
		ID:          e.ID.String(),
		Name:        e.Name,
		Status:      string(e.Status),
		Description: e.Description,
	}
}

var entryTemplate = template.Must(template.New("entry").Funcs(template.FuncMap{
	"maxName": func() int { return work.MaxNameLength },
}).Parse(`
{{- if .IsUpdate }}# entry {{ .ID }} (the name cannot be changed)
{{ end -}}
name = {{ printf "%q" .Name }} # at most {{ maxName }} characters
{{- if .IsUpdate }}
status = {{ printf "%q" .Status }} # created, completed
{{- end }}
---
{{ .Description }}
`))

// RenderEntryTOML renders the entry data as a TOML document for editing.
func RenderEntryTOML(data EntryData) (string, error) {
	var buf bytes.Buffer
	if err := entryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedEntry represents the parsed result from the TOML editor output.
type ParsedEntry struct {
	Name        string  `toml:"name"`
	Status      *string `toml:"status"`
	Description string  `toml:"-"`
}

// ParseEntryTOML parses the TOML content from the editor.
func ParseEntryTOML(content string) (*ParsedEntry, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var parsed ParsedEntry
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Name = internalstrings.NormalizeWhitespace(parsed.Name)
	parsed.Description = strings.TrimSpace(body)

	if err := work.ValidateName(parsed.Name); err != nil {
		return nil, err
	}
	if parsed.Status != nil {
		status, err := work.ParseStatus(*parsed.Status)
		if err != nil {
			return nil, err
		}
		normalized := string(status)
		parsed.Status = &normalized
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = internalstrings.TrimLeadingNewlines(content)
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditEntryWithData opens the editor with pre-populated data and returns the parsed result.
func EditEntryWithData(data EntryData) (*ParsedEntry, error) {
	content, err := RenderEntryTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "work-entry-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseEntryTOML(string(edited))
}

// UpdateOptions converts a parsed update of existing into work.EditOptions.
// Names are fixed once an entry exists, so a changed name is an error.
func (p *ParsedEntry) UpdateOptions(existing *work.Entry) (work.EditOptions, error) {
	if p.Name != internalstrings.NormalizeWhitespace(existing.Name) {
		return work.EditOptions{}, fmt.Errorf("%w: entry %s is named %q", ErrNameChanged, existing.ID, existing.Name)
	}

	var opts work.EditOptions
	if p.Description != "" {
		description := p.Description
		opts.Description = &description
	}
	if p.Status != nil {
		status := work.Status(*p.Status)
		opts.Status = &status
	}
	return opts, nil
}
