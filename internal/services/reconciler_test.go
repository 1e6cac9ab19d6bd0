package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careercopilot/verifier/internal/models"
)

func TestCompare(t *testing.T) {
	docs := models.DocumentFields{
		"Name":            "Jane Doe",
		"Year of Passing": "2020",
		"CGPA":            "8.5",
	}

	tests := []struct {
		name     string
		resume   *models.ResumeRecord
		docs     models.DocumentFields
		expected []string
	}{
		{
			name: "case insensitive name and exact year and score match",
			resume: &models.ResumeRecord{
				Name:      "jane doe",
				Education: []models.EducationEntry{{Year: "2020", CGPA: "8.5"}},
			},
			docs:     docs,
			expected: []string{},
		},
		{
			name: "name and year mismatch in fixed order",
			resume: &models.ResumeRecord{
				Name:      "John Doe",
				Education: []models.EducationEntry{{Year: "2019", CGPA: "8.5"}},
			},
			docs:     docs,
			expected: []string{"Name mismatch", "Year of Passing mismatch"},
		},
		{
			name: "all three mismatch keeps deterministic order",
			resume: &models.ResumeRecord{
				Name:      "John Doe",
				Education: []models.EducationEntry{{Year: "2019", CGPA: "9.1"}},
			},
			docs:     docs,
			expected: []string{"Name mismatch", "Year of Passing mismatch", "CGPA mismatch"},
		},
		{
			name: "empty resume name and absent document name is a vacuous match",
			resume: &models.ResumeRecord{
				Name: "",
			},
			docs:     models.DocumentFields{},
			expected: []string{},
		},
		{
			name: "empty resume year and score skip those checks",
			resume: &models.ResumeRecord{
				Name:      "Jane Doe",
				Education: []models.EducationEntry{{Degree: "B.Tech"}},
			},
			docs:     docs,
			expected: []string{},
		},
		{
			name: "no education entries skip year and score checks",
			resume: &models.ResumeRecord{
				Name: "Jane Doe",
			},
			docs:     docs,
			expected: []string{},
		},
		{
			name: "claimed year against absent document field mismatches",
			resume: &models.ResumeRecord{
				Name:      "Jane Doe",
				Education: []models.EducationEntry{{Year: "2020"}},
			},
			docs:     models.DocumentFields{"Name": "Jane Doe"},
			expected: []string{"Year of Passing mismatch"},
		},
		{
			name: "year compared verbatim not numerically",
			resume: &models.ResumeRecord{
				Name:      "Jane Doe",
				Education: []models.EducationEntry{{Year: "2020.0"}},
			},
			docs:     docs,
			expected: []string{"Year of Passing mismatch"},
		},
		{
			name: "aliased labels resolve to canonical fields",
			resume: &models.ResumeRecord{
				Name:      "Jane Doe",
				Education: []models.EducationEntry{{Year: "2020", CGPA: "8.5"}},
			},
			docs: models.DocumentFields{
				"Student Name:": "Jane Doe",
				"Passing Year":  "2020",
				"GPA":           "8.5",
			},
			expected: []string{},
		},
		{
			name: "unmapped labels stay unchecked for name",
			resume: &models.ResumeRecord{
				Name: "",
			},
			docs:     models.DocumentFields{"Roll Number": "42"},
			expected: []string{},
		},
	}

	reconciler := NewReconciler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reconciler.Compare(tt.resume, tt.docs))
		})
	}
}

func TestCompareUsesMostRecentEducationEntry(t *testing.T) {
	reconciler := NewReconciler()

	resume := &models.ResumeRecord{
		Name: "Jane Doe",
		Education: []models.EducationEntry{
			{Degree: "B.Tech", Year: "2016", CGPA: "7.0"},
			{Degree: "M.Tech", Year: "2020", CGPA: "8.5"},
		},
	}
	docs := models.DocumentFields{
		"Name":            "Jane Doe",
		"Year of Passing": "2020",
		"CGPA":            "8.5",
	}

	assert.Empty(t, reconciler.Compare(resume, docs))
}

func TestCompareFallsBackToFirstEntryWhenNoYearParses(t *testing.T) {
	reconciler := NewReconciler()

	resume := &models.ResumeRecord{
		Name: "Jane Doe",
		Education: []models.EducationEntry{
			{Degree: "B.Tech", Year: "twenty twenty", CGPA: "8.5"},
			{Degree: "Diploma", Year: "", CGPA: "6.0"},
		},
	}
	docs := models.DocumentFields{
		"Name":            "Jane Doe",
		"Year of Passing": "twenty twenty",
		"CGPA":            "8.5",
	}

	assert.Empty(t, reconciler.Compare(resume, docs))
}
