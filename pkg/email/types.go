package email

// EmailMeta selects the template and addressing for an outbound email.
type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}

// Email is a fully rendered outbound email.
type Email struct {
	Recipient string
	Subject   string
	Body      string
	CC        []string
}

// ReportLink is the data applied to the report link template.
type ReportLink struct {
	Link      string
	ExpiresAt string
}
