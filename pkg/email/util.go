package email

import (
	"fmt"
	"html/template"
)

// getEmailTemplate returns the parsed template for a template type.
func getEmailTemplate(templateType string) (*template.Template, error) {
	tmplFile := fmt.Sprintf("%s.tmpl", templateType)
	tmplPath := fmt.Sprintf("templates/%s", tmplFile)
	return template.New(tmplFile).ParseFS(emailTemplates, tmplPath)
}

// getEmailSubject returns the subject line for a template type.
func getEmailSubject(templateType string) string {
	switch templateType {
	case ReportLinkTemplate:
		return "Your Lung Tracker health report"
	}
	return ""
}
