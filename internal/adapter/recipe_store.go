package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/splice/internal/model"
)

// RecipeStore loads replacement recipes.
type RecipeStore interface {
	// LoadRecipes reads a YAML file holding either a `recipes:` list or a
	// single recipe at the top level. Relative file and replacement_file paths
	// are resolved against the recipe file's directory.
	LoadRecipes(path m.Path) ([]m.Recipe, error)
}

// LocalRecipeStore reads recipes from YAML files on disk.
type LocalRecipeStore struct{}

// NewRecipeStore constructs a RecipeStore implementation.
func NewRecipeStore() *LocalRecipeStore {
	return &LocalRecipeStore{}
}

type recipeFile struct {
	Recipes []m.Recipe `yaml:"recipes"`
}

// LoadRecipes reads, normalizes and validates the recipes in a YAML file.
func (s *LocalRecipeStore) LoadRecipes(path m.Path) ([]m.Recipe, error) {
	// #nosec G304 - recipe path comes from the command line
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	recipes, err := decodeRecipes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: %s defines no recipes", m.ErrInvalidRecipe, path)
	}

	baseDir := filepath.Dir(string(path))

	for i := range recipes {
		recipes[i] = normalizeRecipe(recipes[i], baseDir, i)

		if err := recipes[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return recipes, nil
}

// decodeRecipes picks the list form when the top-level mapping has a
// `recipes` key and the single-recipe form otherwise.
func decodeRecipes(data []byte) ([]m.Recipe, error) {
	var top map[string]yaml.Node
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	if len(top) == 0 {
		return nil, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if _, ok := top["recipes"]; ok {
		var list recipeFile
		if err := dec.Decode(&list); err != nil {
			return nil, err
		}

		return list.Recipes, nil
	}

	var single m.Recipe
	if err := dec.Decode(&single); err != nil {
		return nil, err
	}

	return []m.Recipe{single}, nil
}

func normalizeRecipe(r m.Recipe, baseDir string, index int) m.Recipe {
	if r.File != "" && !filepath.IsAbs(string(r.File)) {
		r.File = m.Path(filepath.Join(baseDir, string(r.File)))
	}

	if r.ReplacementFile != "" && !filepath.IsAbs(string(r.ReplacementFile)) {
		r.ReplacementFile = m.Path(filepath.Join(baseDir, string(r.ReplacementFile)))
	}

	if r.Encoding == "" {
		r.Encoding = m.DefaultEncoding
	}

	if strings.TrimSpace(r.Name) == "" {
		r.Name = fmt.Sprintf("%s#%d", filepath.Base(string(r.File)), index+1)
	}

	return r
}
