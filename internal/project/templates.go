package project

import "fmt"

// readmeTemplate seeds a README for a freshly scaffolded project
func readmeTemplate(name string) string {
	return fmt.Sprintf(`# %s

## Project Overview

[Brief description of the project]

## Project Structure

- data/raw        Original, immutable data
- data/interim    Intermediate transformed data
- data/processed  Final data for analysis
- notebooks       Exploration notebooks
- src             Source code
- plots           Generated figures
- docs            Documentation
- reports         Generated analysis
- results         Model outputs
- config          Configuration files

## Data

Raw data lives in data/raw and is never modified in place; derived data
goes to data/interim and data/processed.
`, name)
}

// gitignoreTemplate keeps bulky or regenerable artifacts out of git while
// preserving publication plots
const gitignoreTemplate = `# Data files (too large for git)
data/raw/*
data/interim/*
data/processed/*
!data/raw/.gitkeep
!data/interim/.gitkeep
!data/processed/.gitkeep

# Notebook checkpoints
.ipynb_checkpoints/

# Regenerable results
results/*
plots/exploratory/*

# Keep publication plots
!plots/publication/

# Editors and OS noise
.vscode/
.idea/
*.swp
.DS_Store

# Configuration with sensitive data
config/secrets.yml
config/local_config.yml
`
