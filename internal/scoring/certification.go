package scoring

import (
	"strings"

	"github.com/jonathan/skillfit/internal/types"
)

// calculateCertificationScore mirrors the education score's
// required/preferred/bonus structure, but matches certifications by
// substring containment of normalized names (either direction) plus
// optional issuer equality.
func calculateCertificationScore(resumeCerts, jdCerts []types.Certification) *float64 {
	if len(jdCerts) == 0 {
		return nil
	}

	var required, preferred []types.Certification
	for _, cert := range jdCerts {
		if cert.Required {
			required = append(required, cert)
		}
		if cert.Preferred {
			preferred = append(preferred, cert)
		}
	}

	if len(required) > 0 {
		if len(matchCertifications(resumeCerts, required)) == 0 {
			return ptr(0.0)
		}
		if len(preferred) > 0 {
			matched := matchCertifications(resumeCerts, preferred)
			bonus := float64(len(matched)) / float64(len(preferred)) * preferredBonus
			return ptr(clamp(100.0+bonus, 0.0, 100.0))
		}
		return ptr(100.0)
	}

	if len(preferred) > 0 {
		matched := matchCertifications(resumeCerts, preferred)
		score := float64(len(matched)) / float64(len(preferred)) * 100.0
		return ptr(clamp(score, 0.0, 100.0))
	}

	return nil
}

// matchCertifications returns the JD certification entries satisfied by the
// resume.
func matchCertifications(resumeCerts, jdCerts []types.Certification) []types.Certification {
	matched := make([]types.Certification, 0)

	for _, jdCert := range jdCerts {
		jdName := normalizeCertName(jdCert.Name)

		for _, resumeCert := range resumeCerts {
			resumeName := normalizeCertName(resumeCert.Name)

			if !strings.Contains(jdName, resumeName) && !strings.Contains(resumeName, jdName) {
				continue
			}
			if jdCert.Issuer != "" {
				if resumeCert.Issuer == "" || normalizeCertName(jdCert.Issuer) != normalizeCertName(resumeCert.Issuer) {
					continue
				}
			}
			matched = append(matched, jdCert)
			break
		}
	}

	return matched
}

func normalizeCertName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
