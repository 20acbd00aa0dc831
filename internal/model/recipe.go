package model

import (
	"errors"
	"fmt"
)

// ErrInvalidRecipe is returned when a recipe is missing required fields.
var ErrInvalidRecipe = errors.New("invalid recipe")

// StartRule locates the first line of a region.
type StartRule struct {
	// After, when set, is searched first; the start anchor is searched from its line on.
	After Anchor `yaml:"after,omitempty"`
	// Anchor marks the start line.
	Anchor Anchor `yaml:"anchor"`
	// Keep leaves the start anchor line in place; the region begins on the next line.
	Keep bool `yaml:"keep,omitempty"`
}

// BalanceRule configures the depth counter used to find an unmatched closing token.
type BalanceRule struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// EndRule locates the line that bounds a region.
type EndRule struct {
	// Stop is the next-section anchor searched forward from the start line.
	Stop Anchor `yaml:"stop,omitempty"`
	// Closings are consumed one by one scanning backward from the line before Stop.
	Closings []Anchor `yaml:"closings,omitempty"`
	// Balance finds the first unmatched closing token scanning forward.
	Balance *BalanceRule `yaml:"balance,omitempty"`
	// Include makes the boundary line part of the region.
	Include bool `yaml:"include,omitempty"`
}

// Recipe describes one block replacement in one file.
type Recipe struct {
	Name            string    `yaml:"name,omitempty"`
	File            Path      `yaml:"file"`
	Encoding        string    `yaml:"encoding,omitempty"`
	Start           StartRule `yaml:"start"`
	End             EndRule   `yaml:"end"`
	Replacement     string    `yaml:"replacement,omitempty"`
	ReplacementFile Path      `yaml:"replacement_file,omitempty"`
}

// Validate checks that the recipe can be resolved.
func (r Recipe) Validate() error {
	if r.File == "" {
		return fmt.Errorf("%w %q: file is required", ErrInvalidRecipe, r.Name)
	}

	if r.Start.Anchor == "" {
		return fmt.Errorf("%w %q: start anchor is required", ErrInvalidRecipe, r.Name)
	}

	if r.End.Stop == "" && len(r.End.Closings) == 0 && r.End.Balance == nil {
		return fmt.Errorf("%w %q: end needs a stop anchor, closings or a balance rule", ErrInvalidRecipe, r.Name)
	}

	for i, closing := range r.End.Closings {
		if closing == "" {
			return fmt.Errorf("%w %q: closing %d is empty", ErrInvalidRecipe, r.Name, i)
		}
	}

	if len(r.End.Closings) > 0 && r.End.Balance != nil {
		return fmt.Errorf("%w %q: closings and balance are mutually exclusive", ErrInvalidRecipe, r.Name)
	}

	if b := r.End.Balance; b != nil && (b.Open == "" || b.Close == "" || b.Open == b.Close) {
		return fmt.Errorf("%w %q: balance needs distinct open and close tokens", ErrInvalidRecipe, r.Name)
	}

	if (r.Replacement == "") == (r.ReplacementFile == "") {
		return fmt.Errorf("%w %q: exactly one of replacement and replacement_file is required", ErrInvalidRecipe, r.Name)
	}

	return nil
}

// EncodingOrDefault returns the recipe encoding, DefaultEncoding when unset.
func (r Recipe) EncodingOrDefault() string {
	if r.Encoding == "" {
		return DefaultEncoding
	}

	return r.Encoding
}
