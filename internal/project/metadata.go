package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// metadataFile is the project metadata file name
const metadataFile = "project_metadata.json"

// structureVersion identifies the scaffold layout metadata was written for
const structureVersion = "1.0"

// Metadata describes a project for later discovery and documentation
type Metadata struct {
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Author           string    `json:"author"`
	Created          time.Time `json:"created"`
	Tags             []string  `json:"tags"`
	StructureVersion string    `json:"structure_version"`
}

// WriteMetadata writes project_metadata.json into the project directory.
// The write goes through a temp file and rename so a crash never leaves a
// half-written metadata file behind.
func (p *Project) WriteMetadata(description, author string, tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	meta := Metadata{
		Name:             p.Name(),
		Description:      description,
		Author:           author,
		Created:          time.Now().UTC(),
		Tags:             tags,
		StructureVersion: structureVersion,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(p.Base, metadataFile)
	tempPath := path + ".boxpath.tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("write metadata: %w", err)
	}
	return path, nil
}

// ReadMetadata loads project_metadata.json if present
func (p *Project) ReadMetadata() (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(p.Base, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &meta, nil
}
