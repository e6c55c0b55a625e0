package market

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Table maps role names to market skill-frequency profiles. It is loaded once
// at startup and never mutated afterwards, so it is safe to share across
// requests without locking.
type Table struct {
	roles map[string]RoleProfile
}

// RoleProfile holds the observed market frequency (0..1) per skill for one
// role. Skill order is the order the skills appeared in the source data and is
// preserved because missing-skill ranking uses it to break importance ties.
type RoleProfile struct {
	skills []SkillFrequency
}

type SkillFrequency struct {
	Skill     string
	Frequency float64
}

func (t Table) Role(name string) (RoleProfile, bool) {
	if t.roles == nil {
		return RoleProfile{}, false
	}
	p, ok := t.roles[name]
	return p, ok
}

func (t Table) Roles() []string {
	out := make([]string, 0, len(t.roles))
	for name := range t.roles {
		out = append(out, name)
	}
	return out
}

func (t Table) Len() int {
	return len(t.roles)
}

func (p RoleProfile) Skills() []SkillFrequency {
	return p.skills
}

func (p RoleProfile) Len() int {
	return len(p.skills)
}

// New builds a table from explicit profiles. Intended for tests and for the
// offline dataset builder; the server loads from disk via Load.
func New(roles map[string][]SkillFrequency) Table {
	m := make(map[string]RoleProfile, len(roles))
	for name, skills := range roles {
		cp := make([]SkillFrequency, len(skills))
		copy(cp, skills)
		m[name] = RoleProfile{skills: cp}
	}
	return Table{roles: m}
}

// Load reads a {role: {skill: frequency}} JSON document. A missing file is not
// an error: role lookups against the resulting empty table all miss, which
// degrades analysis to a zero alignment score instead of failing requests.
func Load(path string) (Table, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Table{roles: map[string]RoleProfile{}}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{roles: map[string]RoleProfile{}}, nil
		}
		return Table{}, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes the table token by token instead of into nested maps so that
// the per-role skill order of the document survives decoding.
func Parse(r io.Reader) (Table, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return Table{}, fmt.Errorf("market table: %w", err)
	}

	roles := make(map[string]RoleProfile)
	for dec.More() {
		roleTok, err := dec.Token()
		if err != nil {
			return Table{}, fmt.Errorf("market table: %w", err)
		}
		role, ok := roleTok.(string)
		if !ok {
			return Table{}, fmt.Errorf("market table: unexpected key token %v", roleTok)
		}

		profile, err := parseProfile(dec)
		if err != nil {
			return Table{}, fmt.Errorf("market table: role %q: %w", role, err)
		}
		roles[role] = profile
	}

	if err := expectDelim(dec, '}'); err != nil {
		return Table{}, fmt.Errorf("market table: %w", err)
	}

	return Table{roles: roles}, nil
}

func parseProfile(dec *json.Decoder) (RoleProfile, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return RoleProfile{}, err
	}

	skills := make([]SkillFrequency, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return RoleProfile{}, err
		}
		skill, ok := keyTok.(string)
		if !ok {
			return RoleProfile{}, fmt.Errorf("unexpected key token %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return RoleProfile{}, err
		}
		freq, ok := valTok.(float64)
		if !ok {
			return RoleProfile{}, fmt.Errorf("skill %q: frequency is not a number", skill)
		}
		if freq < 0 || freq > 1 {
			return RoleProfile{}, fmt.Errorf("skill %q: frequency %v out of range [0,1]", skill, freq)
		}

		skills = append(skills, SkillFrequency{Skill: skill, Frequency: freq})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return RoleProfile{}, err
	}
	return RoleProfile{skills: skills}, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) (err error) {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
