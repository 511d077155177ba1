// Package seed loads the ingredient and tag catalogues from YAML files.
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"foodgram-backend/internal/database/models"
	"foodgram-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// IngredientData is one ingredient entry of an ingredients*.yaml file
type IngredientData struct {
	Name            string `yaml:"name" validate:"required,max=200"`
	MeasurementUnit string `yaml:"measurement_unit" validate:"required,max=200"`
}

// TagData is one tag entry of a tags*.yaml file
type TagData struct {
	Name  string `yaml:"name" validate:"required,max=200"`
	Color string `yaml:"color" validate:"required,hexcolor"`
	Slug  string `yaml:"slug" validate:"required,max=200"`
}

// IngredientsFile is the layout of an ingredients*.yaml file
type IngredientsFile struct {
	Ingredients []IngredientData `yaml:"ingredients"`
}

// TagsFile is the layout of a tags*.yaml file
type TagsFile struct {
	Tags []TagData `yaml:"tags"`
}

// Result reports how many rows each catalogue gained
type Result struct {
	IngredientsCreated int
	IngredientsTotal   int
	TagsCreated        int
	TagsTotal          int
}

// Load reads every catalogue file under dataDir and inserts the entries that
// are not stored yet. Ingredients are keyed by name and unit, tags by slug.
func Load(db *gorm.DB, dataDir string) (*Result, error) {
	ingredients, err := LoadIngredients(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	tags, err := LoadTags(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	validate := validator.New()
	result := &Result{IngredientsTotal: len(ingredients), TagsTotal: len(tags)}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, data := range ingredients {
			if err := validate.Struct(data); err != nil {
				return fmt.Errorf("invalid ingredient %q: %w", data.Name, err)
			}
			created, err := createIngredient(tx, data)
			if err != nil {
				return fmt.Errorf("failed to create ingredient %s: %w", data.Name, err)
			}
			if created {
				result.IngredientsCreated++
			}
		}

		for _, data := range tags {
			if err := validate.Struct(data); err != nil {
				return fmt.Errorf("invalid tag %q: %w", data.Slug, err)
			}
			created, err := createTag(tx, data)
			if err != nil {
				return fmt.Errorf("failed to create tag %s: %w", data.Slug, err)
			}
			if created {
				result.TagsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"ingredients_created": result.IngredientsCreated,
		"ingredients_total":   result.IngredientsTotal,
		"tags_created":        result.TagsCreated,
		"tags_total":          result.TagsTotal,
	}).Info("catalogue seeded")

	return result, nil
}

// LoadIngredients collects the entries of every ingredients*.yaml under dataDir
func LoadIngredients(dataDir string) ([]IngredientData, error) {
	var all []IngredientData
	err := walkYAML(dataDir, "ingredients", func(data []byte) error {
		var file IngredientsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Ingredients...)
		return nil
	})
	return all, err
}

// LoadTags collects the entries of every tags*.yaml under dataDir
func LoadTags(dataDir string) ([]TagData, error) {
	var all []TagData
	err := walkYAML(dataDir, "tags", func(data []byte) error {
		var file TagsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Tags...)
		return nil
	})
	return all, err
}

func walkYAML(dataDir, prefix string, decode func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() || !strings.HasPrefix(name, prefix) || !isYAML(name) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := decode(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

func createIngredient(db *gorm.DB, data IngredientData) (bool, error) {
	var ingredient models.Ingredient
	err := db.Where("name = ? AND measurement_unit = ?", data.Name, data.MeasurementUnit).First(&ingredient).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query ingredient: %w", err)
	}

	ingredient = models.Ingredient{Name: data.Name, MeasurementUnit: data.MeasurementUnit}
	if err := db.Create(&ingredient).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createTag(db *gorm.DB, data TagData) (bool, error) {
	var tag models.Tag
	err := db.Where("slug = ?", data.Slug).First(&tag).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query tag: %w", err)
	}

	tag = models.Tag{Name: data.Name, Color: data.Color, Slug: data.Slug}
	if err := db.Create(&tag).Error; err != nil {
		return false, err
	}
	return true, nil
}
