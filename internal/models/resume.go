package models

// EducationEntry is one degree claimed on a resume.
type EducationEntry struct {
	Degree  string `json:"degree"`
	College string `json:"college"`
	Year    string `json:"year"`
	CGPA    string `json:"cgpa"`
}

// ResumeRecord is the normalized resume produced by the structured-record
// generator. It is the "claimed" side of reconciliation; the extracted
// credential document fields are the "documented" side.
type ResumeRecord struct {
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Education []EducationEntry `json:"education"`
	Skills    []string         `json:"skills"`
	Projects  []string         `json:"projects"`
}

// DocumentFields maps OCR-detected field labels to their extracted values.
// Keys are whatever labels the extraction service found, not a fixed schema.
type DocumentFields map[string]string
