package marketdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errColumnsNotFound = errors.New("could not find title and skills columns")

// ReadCSV streams job postings from a CSV export into the builder. The title
// and skills columns are detected by header substring, so datasets with
// headers like "job_title" or "job_skills" work unchanged.
func ReadCSV(r io.Reader, b *Builder) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	titleIdx, skillsIdx := -1, -1
	for i, col := range header {
		lower := strings.ToLower(col)
		if titleIdx < 0 && strings.Contains(lower, "title") {
			titleIdx = i
		}
		if skillsIdx < 0 && strings.Contains(lower, "skill") {
			skillsIdx = i
		}
	}
	if titleIdx < 0 || skillsIdx < 0 {
		return 0, fmt.Errorf("%w: available columns: %v", errColumnsNotFound, header)
	}

	rows := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("read csv row: %w", err)
		}
		if titleIdx >= len(record) || skillsIdx >= len(record) {
			continue
		}

		b.AddPosting(Posting{Title: record[titleIdx], SkillsText: record[skillsIdx]})
		rows++
	}
	return rows, nil
}
