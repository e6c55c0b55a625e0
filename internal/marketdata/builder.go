package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"career-os/internal/domain/market"
)

// roleMappings buckets raw job titles into the four tracked roles by keyword
// match. A title matching none of them is skipped.
var roleMappings = map[string][]string{
	"Backend Developer": {
		"backend engineer",
		"backend developer",
		"full-stack developer",
		"python developer",
		"api developer",
		"server-side developer",
		"systems engineer",
	},
	"Machine Learning Engineer": {
		"machine learning engineer",
		"ml engineer",
		"data scientist",
		"ml researcher",
		"ai engineer",
		"deep learning engineer",
	},
	"Frontend Developer": {
		"frontend engineer",
		"frontend developer",
		"ui engineer",
		"react developer",
		"web developer",
		"javascript developer",
		"full-stack developer",
	},
	"Data Analyst": {
		"data analyst",
		"data engineer",
		"analytics engineer",
		"bi analyst",
		"business analyst",
		"sql analyst",
	},
}

// roleOrder fixes the output ordering; map iteration would shuffle it per run.
var roleOrder = []string{
	"Backend Developer",
	"Machine Learning Engineer",
	"Frontend Developer",
	"Data Analyst",
}

var skillNormalizations = map[string]string{
	"python3":    "python",
	"js":         "javascript",
	"ts":         "typescript",
	"sql server": "sql",
	"nosql":      "mongodb",
	"ml":         "machine learning",
	"ai":         "artificial intelligence",
	"devops":     "devops",
	"k8s":        "kubernetes",
	"gs":         "google suite",
}

const defaultTopN = 25

// NormalizeTitle maps a raw posting title onto a tracked role. The boolean is
// false when the title belongs to none of them.
func NormalizeTitle(title string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(title))
	if normalized == "" {
		return "", false
	}
	for _, role := range roleOrder {
		for _, keyword := range roleMappings[role] {
			if strings.Contains(normalized, keyword) {
				return role, true
			}
		}
	}
	return "", false
}

// NormalizeSkill lower-cases, trims and collapses known aliases (js, k8s,
// python3) onto their canonical names.
func NormalizeSkill(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := skillNormalizations[normalized]; ok {
		return canonical
	}
	return normalized
}

// ExtractSkills splits a comma-separated skills field into normalized,
// non-empty skill names. Duplicates are kept; callers dedupe per posting.
func ExtractSkills(skillsText string) []string {
	parts := strings.Split(skillsText, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		s := NormalizeSkill(p)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}

// Posting is one job advertisement: its raw title plus the comma-separated
// skills field.
type Posting struct {
	Title      string
	SkillsText string
}

// Builder accumulates postings and derives per-role skill demand frequencies.
// Within a posting each skill counts once no matter how often it is listed.
type Builder struct {
	topN     int
	counts   map[string]map[string]int
	order    map[string][]string
	postings map[string]int
}

func NewBuilder() *Builder {
	return &Builder{
		topN:     defaultTopN,
		counts:   make(map[string]map[string]int),
		order:    make(map[string][]string),
		postings: make(map[string]int),
	}
}

func (b *Builder) AddPosting(p Posting) {
	role, ok := NormalizeTitle(p.Title)
	if !ok {
		return
	}

	b.postings[role]++

	seen := make(map[string]struct{})
	for _, skill := range ExtractSkills(p.SkillsText) {
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}

		if b.counts[role] == nil {
			b.counts[role] = make(map[string]int)
		}
		if _, known := b.counts[role][skill]; !known {
			b.order[role] = append(b.order[role], skill)
		}
		b.counts[role][skill]++
	}
}

// RoleDemand is the computed demand profile of one role.
type RoleDemand struct {
	Role     string
	Postings int
	Skills   []market.SkillFrequency
}

// Dataset is the full market table in a stable role and skill order, ready to
// be serialized for the analysis service.
type Dataset struct {
	Profiles []RoleDemand
}

// Dataset computes frequencies (skill count / role posting count, rounded to
// 2 decimals), keeps the topN skills per role ordered by descending frequency
// with ties in first-seen order, and drops roles with zero postings.
func (b *Builder) Dataset() Dataset {
	var out Dataset
	for _, role := range roleOrder {
		count := b.postings[role]
		if count == 0 {
			continue
		}

		skills := make([]market.SkillFrequency, 0, len(b.order[role]))
		for _, skill := range b.order[role] {
			freq := math.Round(float64(b.counts[role][skill])/float64(count)*100) / 100
			skills = append(skills, market.SkillFrequency{Skill: skill, Frequency: freq})
		}

		sort.SliceStable(skills, func(i, j int) bool {
			return skills[i].Frequency > skills[j].Frequency
		})
		if len(skills) > b.topN {
			skills = skills[:b.topN]
		}

		out.Profiles = append(out.Profiles, RoleDemand{Role: role, Postings: count, Skills: skills})
	}
	return out
}

// WriteJSON emits {"Role": {"skill": freq, ...}, ...} preserving the demand
// ordering. encoding/json sorts map keys, so the object is written by hand.
func (d Dataset) WriteJSON(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("{\n")

	for i, profile := range d.Profiles {
		roleKey, err := json.Marshal(profile.Role)
		if err != nil {
			return err
		}
		sb.WriteString("  ")
		sb.Write(roleKey)
		sb.WriteString(": {\n")

		for j, sf := range profile.Skills {
			skillKey, err := json.Marshal(sf.Skill)
			if err != nil {
				return err
			}
			sb.WriteString("    ")
			sb.Write(skillKey)
			sb.WriteString(fmt.Sprintf(": %g", sf.Frequency))
			if j < len(profile.Skills)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}

		sb.WriteString("  }")
		if i < len(d.Profiles)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
