package services

import (
	"strconv"
	"strings"

	"careercopilot/verifier/internal/models"
)

// Canonical document fields checked during reconciliation. OCR labels are
// free text, so lookups go through a small alias table instead of exact
// label matching; labels that map to nothing are left unchecked.
const (
	fieldName          = "name"
	fieldYearOfPassing = "year_of_passing"
	fieldCGPA          = "cgpa"
)

// labelAliases lists, per canonical field, the known OCR label variants in
// lookup order. The first variant present in the document wins.
var labelAliases = map[string][]string{
	fieldName: {
		"name",
		"student name",
		"candidate name",
		"name of student",
		"name of the student",
	},
	fieldYearOfPassing: {
		"year of passing",
		"passing year",
		"year of completion",
	},
	fieldCGPA: {
		"cgpa",
		"gpa",
		"cgpa score",
		"grade point average",
	},
}

// Reconciler compares the claimed resume record against the extracted
// credential document fields. Each check is independent and the result
// order is fixed (name, year, score) so runs are reproducible.
type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Compare returns one human-readable entry per field-level mismatch. An
// empty result means no mismatch was found in the checked fields, not that
// the documents are verified true.
func (r *Reconciler) Compare(resume *models.ResumeRecord, docs models.DocumentFields) []string {
	issues := []string{}
	resolved := resolveFields(docs)

	// Name check: case-insensitive; an absent document field counts as
	// empty, so it only matches an empty resume name.
	if !strings.EqualFold(strings.TrimSpace(resume.Name), strings.TrimSpace(resolved[fieldName])) {
		issues = append(issues, "Name mismatch")
	}

	entry, ok := primaryEducation(resume.Education)
	if !ok {
		return issues
	}

	// Year and CGPA are compared verbatim, not numerically, and only when
	// the resume actually claims them.
	if year := strings.TrimSpace(entry.Year); year != "" {
		if year != strings.TrimSpace(resolved[fieldYearOfPassing]) {
			issues = append(issues, "Year of Passing mismatch")
		}
	}

	if score := strings.TrimSpace(entry.CGPA); score != "" {
		if score != strings.TrimSpace(resolved[fieldCGPA]) {
			issues = append(issues, "CGPA mismatch")
		}
	}

	return issues
}

// resolveFields maps the OCR-discovered labels onto canonical field names.
// Document labels that alias nothing are dropped, which leaves the checks
// they might have fed unchecked rather than mismatched.
func resolveFields(docs models.DocumentFields) map[string]string {
	normalized := make(map[string]string, len(docs))
	for label, value := range docs {
		normalized[normalizeLabel(label)] = value
	}

	resolved := map[string]string{}
	for canonical, variants := range labelAliases {
		for _, variant := range variants {
			if value, ok := normalized[variant]; ok {
				resolved[canonical] = value
				break
			}
		}
	}
	return resolved
}

func normalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.TrimSuffix(label, ":")
	return strings.Join(strings.Fields(label), " ")
}

// primaryEducation picks the entry whose year parses as the largest number,
// i.e. the most recent degree. Entries with unparseable years lose to any
// parseable one; when nothing parses the first entry is used.
func primaryEducation(entries []models.EducationEntry) (models.EducationEntry, bool) {
	if len(entries) == 0 {
		return models.EducationEntry{}, false
	}

	best := 0
	bestYear := -1
	for i, entry := range entries {
		year, err := strconv.Atoi(strings.TrimSpace(entry.Year))
		if err != nil {
			continue
		}
		if year > bestYear {
			best = i
			bestYear = year
		}
	}

	return entries[best], true
}
