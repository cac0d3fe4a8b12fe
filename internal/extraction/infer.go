package extraction

import (
	"strings"

	"github.com/jonathan/skillfit/internal/taxonomy"
)

// categoryHints maps well-known skill names to categories, used when the
// model returns a category outside the taxonomy. Lookup is by lowercased
// name; anything unknown falls back to Other.
var categoryHints = map[string]taxonomy.Category{}

func init() {
	hints := map[taxonomy.Category][]string{
		taxonomy.ProgrammingLanguages: {
			"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
			"ruby", "php", "swift", "kotlin", "scala", "r", "matlab",
		},
		taxonomy.FrameworksLibraries: {
			"react", "django", "spring", "spring boot", "flask", "express", "angular",
			"vue", "node.js", "tensorflow", "pytorch", "keras", "pandas", "numpy",
		},
		taxonomy.Databases: {
			"postgresql", "mysql", "mongodb", "redis", "cassandra", "oracle",
			"sqlite", "dynamodb", "elasticsearch",
		},
		taxonomy.CloudServices: {
			"aws", "azure", "gcp", "google cloud", "heroku", "vercel", "netlify",
		},
		taxonomy.DevOps: {
			"kubernetes", "docker", "terraform", "jenkins", "gitlab ci", "github actions",
			"ansible", "puppet", "chef", "vagrant",
		},
		taxonomy.ToolsPlatforms: {
			"git", "jira", "confluence", "slack", "vs code", "intellij", "eclipse",
		},
		taxonomy.MachineLearning: {
			"machine learning", "deep learning", "neural networks", "nlp",
			"computer vision", "reinforcement learning",
		},
		taxonomy.Blockchain: {
			"blockchain", "solidity", "ethereum", "smart contracts", "web3", "defi",
		},
		taxonomy.Leadership: {
			"leadership", "team management", "mentoring", "strategic planning",
			"managing", "supervision",
		},
		taxonomy.Communication: {
			"communication", "technical writing", "presentations", "public speaking",
			"written communication", "verbal communication",
		},
		taxonomy.Collaboration: {
			"collaboration", "teamwork", "pair programming", "code reviews",
			"cross-functional", "cooperation",
		},
		taxonomy.ProblemSolving: {
			"problem solving", "debugging", "troubleshooting", "critical thinking",
			"analytical problem solving",
		},
		taxonomy.AnalyticalThinking: {
			"analytical thinking", "data analysis", "root cause analysis",
			"logical reasoning", "analysis",
		},
		taxonomy.Agile: {
			"agile", "agile development", "agile methodologies",
		},
		taxonomy.Scrum: {
			"scrum", "scrum master", "sprint", "scrum practices",
		},
		taxonomy.CICD: {
			"ci/cd", "continuous integration", "continuous deployment",
		},
	}

	for category, names := range hints {
		for _, name := range names {
			categoryHints[name] = category
		}
	}
}

// inferCategory guesses a category from the skill name alone.
func inferCategory(name string) taxonomy.Category {
	if category, ok := categoryHints[strings.ToLower(strings.TrimSpace(name))]; ok {
		return category
	}
	return taxonomy.Other
}
