package app

import (
	"polyshare/internal/domain"
	solversvc "polyshare/internal/services/solver"
	"polyshare/internal/store"
)

// Wire bundles the stores and services used by the CLI.
type Wire struct {
	Source domain.ShareSource
	Solver *solversvc.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	source := cfg.Source
	if source == nil {
		source = store.NewFileSource()
	}
	return &Wire{
		Source: source,
		Solver: solversvc.New(source),
	}
}
