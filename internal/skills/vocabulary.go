// Package skills provides the fixed skill vocabulary and the relatedness
// matcher used for deduplication, frequency merging, and heuristic course
// scoring. Skills are never compared with plain string equality.
package skills

// technicalSkills is the keyword set scanned against job-posting text.
// Matching is case-insensitive substring containment.
var technicalSkills = []string{
	"javascript",
	"typescript",
	"python",
	"java",
	"golang",
	"rust",
	"c++",
	"c#",
	"react",
	"angular",
	"vue",
	"node",
	"html",
	"css",
	"sql",
	"nosql",
	"mongodb",
	"postgres",
	"redis",
	"graphql",
	"rest",
	"api design",
	"microservices",
	"system design",
	"architecture",
	"aws",
	"azure",
	"gcp",
	"cloud",
	"docker",
	"kubernetes",
	"terraform",
	"ci/cd",
	"devops",
	"linux",
	"git",
	"testing",
	"security",
	"machine learning",
	"data analysis",
	"data engineering",
	"agile",
	"scrum",
	"leadership",
	"communication",
	"mentoring",
	"project management",
}

// synonymGroup is one fixed set of skill variants treated as denoting the
// same underlying capability.
type synonymGroup struct {
	base     string
	variants []string
}

// synonymGroups is the fixed relatedness table. A skill belongs to a group
// when it contains the base term or any listed variant.
var synonymGroups = []synonymGroup{
	{base: "javascript", variants: []string{"js", "node", "nodejs", "typescript", "ts"}},
	{base: "database", variants: []string{"sql", "nosql", "mongodb", "postgres"}},
	{base: "frontend", variants: []string{"react", "vue", "angular", "web"}},
	{base: "backend", variants: []string{"api", "server", "rest", "graphql"}},
	{base: "devops", variants: []string{"ci/cd", "docker", "kubernetes", "aws", "cloud"}},
	{base: "testing", variants: []string{"test", "qa", "quality", "jest", "cypress"}},
}

// Vocabulary returns the fixed technical-skill keyword set.
func Vocabulary() []string {
	out := make([]string, len(technicalSkills))
	copy(out, technicalSkills)
	return out
}
