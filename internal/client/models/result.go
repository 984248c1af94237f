package models

// MaxSkillsShown caps the skill tags rendered per result.
const MaxSkillsShown = 7

// Result is one candidate match returned by the backend for a query.
type Result struct {
	ID         any      `json:"id"`
	Filename   string   `json:"filename"`
	Similarity float64  `json:"similarity"`
	Snippet    string   `json:"snippet"`
	Skills     []string `json:"skills"`
}

// ShownSkills returns at most MaxSkillsShown skills in server order.
func (r Result) ShownSkills() []string {
	if len(r.Skills) <= MaxSkillsShown {
		return r.Skills
	}
	return r.Skills[:MaxSkillsShown]
}

// SearchSession pairs an issued query with the results it produced.
type SearchSession struct {
	Query   string
	Results []Result
}
