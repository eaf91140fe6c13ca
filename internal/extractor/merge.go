package extractor

import "termsheet/internal/domain"

const (
	sourcePattern = "pattern"
	sourceAI      = "ai"
)

// Merge combines deterministic and AI results. The deterministic value is
// kept whenever it is truthy; AI values fill absent or blank fields. The
// returned provenance maps each field to "pattern" or "ai".
func Merge(base, ai domain.FieldSet) (domain.FieldSet, map[string]string) {
	merged := base.Clone()
	provenance := make(map[string]string, len(base)+len(ai))
	for k := range base {
		provenance[k] = sourcePattern
	}

	for k, v := range ai {
		if _, ok := merged.Get(k); ok {
			continue
		}
		if v == nil {
			continue
		}
		merged.Set(k, *v)
		provenance[k] = sourceAI
	}
	return merged, provenance
}
