// Package matching implements the skill reconciliation engine: skill name
// normalization, synonym resolution, and the tiered matcher that pairs
// resume skills with job-description requirements.
package matching

import "strings"

// frameworkSuffixes are stripped from the end of a name so that "React.js"
// and "React" compare equal. Applied in order, once each.
var frameworkSuffixes = []string{".js", ".jsx", ".ts", ".tsx"}

// leadingQualifiers are filler words that precede the actual skill name
// ("proficient Python", "experienced Kubernetes").
var leadingQualifiers = map[string]bool{
	"proficient":  true,
	"experienced": true,
	"skilled":     true,
	"expert":      true,
	"knowledge":   true,
	"familiar":    true,
}

// trailingQualifiers are filler words that follow the actual skill name
// ("Python experience", "SQL skills").
var trailingQualifiers = map[string]bool{
	"experience":  true,
	"proficiency": true,
	"skill":       true,
	"skills":      true,
	"knowledge":   true,
}

// Normalize canonicalizes a free-text skill label for comparison. It is
// deterministic and pure: lowercase, trim, strip framework suffixes, map
// hyphens and underscores to spaces, collapse whitespace runs, and drop a
// single leading or trailing qualifier word. Names containing non-ASCII
// text pass through the same byte-safe string operations unchanged.
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(name))

	for _, suffix := range frameworkSuffixes {
		normalized = strings.TrimSuffix(normalized, suffix)
	}

	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")

	fields := strings.Fields(normalized)
	if len(fields) > 1 && leadingQualifiers[fields[0]] {
		fields = fields[1:]
	}
	if len(fields) > 1 && trailingQualifiers[fields[len(fields)-1]] {
		fields = fields[:len(fields)-1]
	}

	return strings.Join(fields, " ")
}
