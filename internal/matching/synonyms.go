package matching

// skillSynonyms maps canonical skill names to known aliases. The table is
// hand-curated domain knowledge: extend it by adding entries, never by
// inference. Resolution is bidirectional, so an alias resolves to its
// canonical key and every sibling alias.
var skillSynonyms = map[string][]string{
	// Programming languages
	"javascript": {"js", "ecmascript", "nodejs", "node.js"},
	"typescript": {"ts"},
	"c++":        {"cpp", "c plus plus"},
	"c#":         {"csharp", "c-sharp", "dotnet", ".net"},
	"python":     {"py"},
	"java":       {"jvm"},
	"go":         {"golang"},

	// Frameworks
	"react":       {"reactjs", "react.js"},
	"angular":     {"angularjs", "angular.js"},
	"vue":         {"vuejs", "vue.js"},
	"node.js":     {"nodejs", "node", "npm"},
	"spring boot": {"springboot", "spring"},

	// Tools and platforms
	"aws":        {"amazon web services", "amazon aws"},
	"azure":      {"microsoft azure"},
	"gcp":        {"google cloud", "google cloud platform"},
	"kubernetes": {"k8s"},
	"ci/cd":      {"cicd", "continuous integration", "continuous deployment"},

	// Databases
	"postgresql": {"postgres"},
	"mongodb":    {"mongo"},

	// Methodologies
	"agile": {"agile methodology", "agile development"},
	"scrum": {"scrum methodology"},

	// Soft skills
	"problem solving": {"problem-solving", "troubleshooting", "debugging"},
	"communication":   {"communication skills", "verbal communication", "written communication"},
	"leadership":      {"leadership skills", "team leadership"},
}

// SynonymsOf returns the set of known aliases for a skill name, always
// including the normalized name itself. Both raw and normalized forms of
// table entries are consulted, so "Node.js" and "nodejs" resolve to the same
// equivalence class.
func SynonymsOf(name string) map[string]bool {
	normalized := Normalize(name)
	synonyms := map[string]bool{normalized: true}

	for key, aliases := range skillSynonyms {
		if !entryContains(normalized, key, aliases) {
			continue
		}
		synonyms[key] = true
		for _, alias := range aliases {
			synonyms[alias] = true
		}
	}

	return synonyms
}

// SynonymEquivalent reports whether two skill names belong to the same
// synonym equivalence class, defined as a non-empty intersection of their
// synonym sets.
func SynonymEquivalent(a, b string) bool {
	setA := SynonymsOf(a)
	for s := range SynonymsOf(b) {
		if setA[s] {
			return true
		}
	}
	return false
}

// entryContains reports whether normalized equals the entry key or one of
// its aliases, comparing against both raw and normalized table forms.
func entryContains(normalized, key string, aliases []string) bool {
	if normalized == key || normalized == Normalize(key) {
		return true
	}
	for _, alias := range aliases {
		if normalized == alias || normalized == Normalize(alias) {
			return true
		}
	}
	return false
}
