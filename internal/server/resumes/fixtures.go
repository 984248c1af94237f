package resumes

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Result is one canned match, encoded as the search endpoint's JSON.
type Result struct {
	ID         int64    `json:"id" toml:"id"`
	Filename   string   `json:"filename" toml:"filename"`
	Similarity float64  `json:"similarity" toml:"similarity"`
	Snippet    string   `json:"snippet" toml:"snippet"`
	Skills     []string `json:"skills" toml:"skills"`
}

// Fixture maps one query to its results.
type Fixture struct {
	Query   string   `toml:"query"`
	Results []Result `toml:"results"`
}

// Fixtures is the decoded fixtures file:
//
//	[[queries]]
//	query = "python developer"
//
//	  [[queries.results]]
//	  id = 1
//	  filename = "alice.pdf"
//	  similarity = 0.87
//	  snippet = "Five years of Django."
//	  skills = ["python", "django"]
type Fixtures struct {
	Queries []Fixture `toml:"queries"`

	byQuery map[string][]Result
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

// ParseFixtures decodes TOML fixtures. Similarities must lie in [0, 1] and
// a query may appear only once.
func ParseFixtures(data string) (*Fixtures, error) {
	var f Fixtures
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	f.byQuery = make(map[string][]Result, len(f.Queries))
	for _, q := range f.Queries {
		key := normalizeQuery(q.Query)
		if key == "" {
			return nil, fmt.Errorf("fixture with empty query")
		}
		if _, dup := f.byQuery[key]; dup {
			return nil, fmt.Errorf("duplicate fixture query %q", q.Query)
		}
		for _, r := range q.Results {
			if r.Similarity < 0 || r.Similarity > 1 {
				return nil, fmt.Errorf("query %q: similarity %v out of range", q.Query, r.Similarity)
			}
		}
		f.byQuery[key] = q.Results
	}
	return &f, nil
}

// LoadFixtures reads fixtures from path. An empty path yields no fixtures.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return &Fixtures{byQuery: map[string][]Result{}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFixtures(string(data))
}

// Lookup returns a copy of the results for query, matched case-insensitively
// with runs of whitespace collapsed.
func (f *Fixtures) Lookup(query string) ([]Result, bool) {
	if f == nil {
		return nil, false
	}
	res, ok := f.byQuery[normalizeQuery(query)]
	if !ok {
		return nil, false
	}
	out := make([]Result, len(res))
	copy(out, res)
	return out, true
}
