package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadIngredients(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ingredients.yaml", `
ingredients:
  - name: salt
    measurement_unit: g
  - name: water
    measurement_unit: ml
`)
	writeFile(t, dir, "extra/ingredients_spices.yml", `
ingredients:
  - name: pepper
    measurement_unit: pinch
`)
	writeFile(t, dir, "tags.yaml", "tags: []\n")
	writeFile(t, dir, "ingredients.txt", "ignored")

	ingredients, err := LoadIngredients(dir)

	require.NoError(t, err)
	assert.ElementsMatch(t, []IngredientData{
		{Name: "salt", MeasurementUnit: "g"},
		{Name: "water", MeasurementUnit: "ml"},
		{Name: "pepper", MeasurementUnit: "pinch"},
	}, ingredients)
}

func TestLoadTags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tags.yaml", `
tags:
  - name: Breakfast
    color: "#E26C2D"
    slug: breakfast
`)

	tags, err := LoadTags(dir)

	require.NoError(t, err)
	assert.Equal(t, []TagData{{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}}, tags)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tags.yaml", "tags: [unclosed")

	_, err := LoadTags(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tags.yaml")
}

func TestLoadMissingDir(t *testing.T) {
	_, err := LoadIngredients(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
