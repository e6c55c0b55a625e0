package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// analysisCacheKey is stable across skill order and casing: the same role and
// skill set always map to one cache entry.
func analysisCacheKey(role string, userSkills []string) string {
	return "role:analysis:" + skillSetDigest(role, userSkills)
}

func planCacheKey(role string, userSkills []string) string {
	return "career:plan:" + skillSetDigest(role, userSkills)
}

func skillSetDigest(role string, userSkills []string) string {
	normalized := make([]string, 0, len(userSkills))
	seen := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		n := strings.ToLower(strings.TrimSpace(s))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}
	sort.Strings(normalized)

	h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(role)) + "|" + strings.Join(normalized, ",")))
	return hex.EncodeToString(h[:16])
}
