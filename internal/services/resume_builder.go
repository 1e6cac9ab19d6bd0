package services

import (
	"strings"
	"text/template"

	"careercopilot/verifier/internal/models"
)

const resumeTemplate = `-------------------------------
         RESUME
-------------------------------
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}

Professional Summary:
{{.Summary}}

Skills:
{{.Skills}}

Experience:
{{.Experience}}

Education:
{{.Education}}
`

// ResumeBuilderService renders a plain-text resume from the form fields.
type ResumeBuilderService struct {
	tmpl *template.Template
}

func NewResumeBuilderService() *ResumeBuilderService {
	return &ResumeBuilderService{
		tmpl: template.Must(template.New("resume").Parse(resumeTemplate)),
	}
}

func (r *ResumeBuilderService) Build(req *models.BuildResumeRequest) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, req); err != nil {
		return "", err
	}
	return sb.String(), nil
}
