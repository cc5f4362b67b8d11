package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JSONKeepsShoppingOrder(t *testing.T) {
	data := []byte(`{"festivals": [{
		"id": "diwali", "name": "Diwali", "date": "2025-10-20",
		"shopping_list": {"Zebra": ["z"], "Apple": ["a1", "a2"], "Mango": []}
	}]}`)

	cat, warns, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, warns)

	f, _ := cat.ByID("diwali")
	require.Len(t, f.Shopping, 3)
	assert.Equal(t, "Zebra", f.Shopping[0].Name)
	assert.Equal(t, "Apple", f.Shopping[1].Name)
	assert.Equal(t, []string{"a1", "a2"}, f.Shopping[1].Items)
	assert.Equal(t, "Mango", f.Shopping[2].Name)
}

func TestParse_JSONBareArray(t *testing.T) {
	data := []byte(`[{"id": "holi", "name": "Holi", "date": "2026-03-04", "category": "cultural"}]`)

	cat, _, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestParse_JSONNullShoppingList(t *testing.T) {
	data := []byte(`[{"id": "holi", "name": "Holi", "date": "2026-03-04", "shopping_list": null}]`)

	cat, _, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	f, _ := cat.ByID("holi")
	assert.Empty(t, f.Shopping)
}

func TestParse_JSONShoppingListWrongShape(t *testing.T) {
	data := []byte(`[{"id": "holi", "name": "Holi", "date": "2026-03-04", "shopping_list": ["a"]}]`)

	_, _, err := Parse(data, FormatJSON)
	assert.Error(t, err)
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
festivals:
  - id: gudi-padwa
    name: Gudi Padwa
    name_localized: गुढीपाडवा
    date: "2026-03-19"
    category: cultural
    shopping_list:
      Gudi: [Bamboo stick, Silk cloth]
      Food: [Shrikhand]
  - id: broken
    name: Broken
    date: not-a-date
collections:
  - name: marathi
    festival_ids: [gudi-padwa, broken]
`)

	cat, warns, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Len(t, warns, 2, "one excluded record and one dangling collection id")

	f, _ := cat.ByID("gudi-padwa")
	assert.Equal(t, "गुढीपाडवा", f.NameLocalized)
	require.Len(t, f.Shopping, 2)
	assert.Equal(t, "Gudi", f.Shopping[0].Name)
	assert.Equal(t, "Food", f.Shopping[1].Name)

	col, ok := cat.Collection("marathi")
	require.True(t, ok)
	assert.Equal(t, []string{"gudi-padwa"}, col.FestivalIDs)
	assert.Equal(t, "marathi", col.Title, "title defaults to name")
}

func TestParse_YAMLBareSequence(t *testing.T) {
	data := []byte(`
- id: holi
  name: Holi
  date: "2026-03-04"
`)
	cat, _, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestParse_InvalidDocument(t *testing.T) {
	_, _, err := Parse([]byte(`{"festivals": [`), FormatJSON)
	assert.Error(t, err)

	_, _, err = Parse([]byte("festivals: [\n  - id: x\n   bad"), FormatYAML)
	assert.Error(t, err)
}

func TestLoadFile_PicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "festivals.yml")
	require.NoError(t, os.WriteFile(path, []byte("- id: holi\n  name: Holi\n  date: \"2026-03-04\"\n"), 0o644))

	cat, _, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cat.Has("holi"))

	_, _, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoadDefault(t *testing.T) {
	cat, warns, err := LoadDefault()
	require.NoError(t, err)
	assert.Empty(t, warns, "bundled catalog must load cleanly")
	assert.Greater(t, cat.Len(), 5)

	diwali, ok := cat.ByID("diwali")
	require.True(t, ok)
	assert.Equal(t, "2025-10-20", diwali.Date.String())
	assert.Equal(t, domain.CategoryReligious, diwali.Category)
	assert.NotEmpty(t, diwali.Recipes)

	_, ok = cat.Collection("marathi")
	assert.True(t, ok)
}
