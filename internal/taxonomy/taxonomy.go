// Package taxonomy defines the closed set of skill categories used to
// classify skills extracted from resumes and job descriptions.
package taxonomy

// Category is a skill classification tag. The set is closed: extraction
// collaborators must map free-text labels onto one of these values.
type Category string

// Technical categories
const (
	ProgrammingLanguages Category = "programming_languages"
	FrameworksLibraries  Category = "frameworks_libraries"
	ToolsPlatforms       Category = "tools_platforms"
	Databases            Category = "databases"
	CloudServices        Category = "cloud_services"
	DevOps               Category = "devops"
	SoftwareArchitecture Category = "software_architecture"
	MachineLearning      Category = "machine_learning"
	Blockchain           Category = "blockchain"
	Cybersecurity        Category = "cybersecurity"
	DataScience          Category = "data_science"
)

// Soft-skill categories
const (
	Leadership         Category = "leadership"
	Communication      Category = "communication"
	Collaboration      Category = "collaboration"
	ProblemSolving     Category = "problem_solving"
	AnalyticalThinking Category = "analytical_thinking"
)

// Methodology categories
const (
	Agile          Category = "agile"
	Scrum          Category = "scrum"
	CICD           Category = "ci_cd"
	DesignThinking Category = "design_thinking"
)

// Education, certification and domain categories
const (
	Education      Category = "education"
	Certifications Category = "certifications"
	Fintech        Category = "fintech"
	HealthcareIT   Category = "healthcare_it"
	ECommerce      Category = "e_commerce"
	Other          Category = "other"
)

// TechnicalCategories lists the categories that count toward the technical
// sub-score.
var TechnicalCategories = []Category{
	ProgrammingLanguages,
	FrameworksLibraries,
	ToolsPlatforms,
	Databases,
	CloudServices,
	DevOps,
	SoftwareArchitecture,
	MachineLearning,
	Blockchain,
	Cybersecurity,
	DataScience,
}

// SoftSkillCategories lists the categories that count toward the soft-skills
// sub-score.
var SoftSkillCategories = []Category{
	Leadership,
	Communication,
	Collaboration,
	ProblemSolving,
	AnalyticalThinking,
}

// MethodologyCategories lists the process/methodology categories. These are
// tracked in category breakdowns but not scored directly.
var MethodologyCategories = []Category{
	Agile,
	Scrum,
	CICD,
	DesignThinking,
}

var (
	technicalSet   = toSet(TechnicalCategories)
	softSkillSet   = toSet(SoftSkillCategories)
	methodologySet = toSet(MethodologyCategories)

	allSet = func() map[Category]bool {
		m := map[Category]bool{
			Education:      true,
			Certifications: true,
			Fintech:        true,
			HealthcareIT:   true,
			ECommerce:      true,
			Other:          true,
		}
		for _, c := range TechnicalCategories {
			m[c] = true
		}
		for _, c := range SoftSkillCategories {
			m[c] = true
		}
		for _, c := range MethodologyCategories {
			m[c] = true
		}
		return m
	}()
)

func toSet(cats []Category) map[Category]bool {
	m := make(map[Category]bool, len(cats))
	for _, c := range cats {
		m[c] = true
	}
	return m
}

// IsTechnical reports whether c counts toward the technical sub-score.
func IsTechnical(c Category) bool { return technicalSet[c] }

// IsSoftSkill reports whether c counts toward the soft-skills sub-score.
func IsSoftSkill(c Category) bool { return softSkillSet[c] }

// IsMethodology reports whether c is a methodology category.
func IsMethodology(c Category) bool { return methodologySet[c] }

// Valid reports whether c is a member of the closed category set.
func Valid(c Category) bool { return allSet[c] }

// Parse returns the Category for tag, or Other if the tag is not a member
// of the closed set. Unknown tags are tolerated rather than rejected because
// extraction output is best-effort.
func Parse(tag string) Category {
	c := Category(tag)
	if allSet[c] {
		return c
	}
	return Other
}

// Descriptions maps each category to a short human-readable summary, used
// when building extraction prompts.
var Descriptions = map[Category]string{
	ProgrammingLanguages: "Programming languages (Python, Java, JavaScript, etc.)",
	FrameworksLibraries:  "Frameworks and libraries (React, Django, Spring Boot, etc.)",
	ToolsPlatforms:       "Development tools and platforms (Git, Docker, Jira, etc.)",
	Databases:            "Database technologies (PostgreSQL, MongoDB, Redis, etc.)",
	CloudServices:        "Cloud services (AWS, Azure, GCP, etc.)",
	DevOps:               "DevOps tools and practices (Kubernetes, Terraform, Jenkins, etc.)",
	SoftwareArchitecture: "Software architecture patterns and concepts",
	MachineLearning:      "Machine learning and AI technologies",
	Blockchain:           "Blockchain technologies (Solidity, Ethereum, etc.)",
	Cybersecurity:        "Cybersecurity skills and tools",
	DataScience:          "Data science and analytics",
	Leadership:           "Leadership skills",
	Communication:        "Communication skills",
	Collaboration:        "Collaboration and teamwork",
	ProblemSolving:       "Problem-solving abilities",
	AnalyticalThinking:   "Analytical thinking",
	Agile:                "Agile methodologies",
	Scrum:                "Scrum practices",
	CICD:                 "CI/CD practices",
	DesignThinking:       "Design thinking",
	Education:            "Education requirements",
	Certifications:       "Professional certifications",
	Fintech:              "Financial technology domain",
	HealthcareIT:         "Healthcare IT domain",
	ECommerce:            "E-commerce domain",
	Other:                "Other skills",
}
