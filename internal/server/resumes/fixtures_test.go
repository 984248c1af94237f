package resumes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixtures = `
[[queries]]
query = "Python Developer"

  [[queries.results]]
  id = 1
  filename = "alice.pdf"
  similarity = 0.87
  snippet = "Five years of Django."
  skills = ["python", "django", "postgres"]

  [[queries.results]]
  id = 2
  similarity = 0.41

[[queries]]
query = "nobody"
results = []
`

func TestParseFixtures(t *testing.T) {
	f, err := ParseFixtures(sampleFixtures)
	require.NoError(t, err)

	res, ok := f.Lookup("  python   DEVELOPER ")
	require.True(t, ok)
	require.Len(t, res, 2)
	assert.Equal(t, Result{ID: 1, Filename: "alice.pdf", Similarity: 0.87, Snippet: "Five years of Django.", Skills: []string{"python", "django", "postgres"}}, res[0])
	assert.Equal(t, int64(2), res[1].ID)

	res, ok = f.Lookup("nobody")
	assert.True(t, ok)
	assert.Empty(t, res)

	_, ok = f.Lookup("java")
	assert.False(t, ok)
}

func TestParseFixtures_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad toml":    `[[queries]`,
		"empty query": "[[queries]]\nquery = \" \"\n",
		"duplicate":   "[[queries]]\nquery = \"go\"\n[[queries]]\nquery = \"GO\"\n",
		"similarity":  "[[queries]]\nquery = \"go\"\n[[queries.results]]\nid = 1\nsimilarity = 1.5\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFixtures(data)
			assert.Error(t, err)
		})
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	f, err := ParseFixtures(sampleFixtures)
	require.NoError(t, err)

	res, _ := f.Lookup("python developer")
	res[0].Filename = "changed"

	again, _ := f.Lookup("python developer")
	assert.Equal(t, "alice.pdf", again[0].Filename)
}

func TestLoadFixtures(t *testing.T) {
	f, err := LoadFixtures("")
	require.NoError(t, err)
	_, ok := f.Lookup("anything")
	assert.False(t, ok)

	path := filepath.Join(t.TempDir(), "fixtures.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFixtures), 0o600))
	f, err = LoadFixtures(path)
	require.NoError(t, err)
	_, ok = f.Lookup("python developer")
	assert.True(t, ok)

	_, err = LoadFixtures(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
