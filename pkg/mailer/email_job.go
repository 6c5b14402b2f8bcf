package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template, when set, selects a server-side render; otherwise Subject with
// Text and/or HTML is used as-is.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "password_reset"
	Data     map[string]any `json:"data,omitempty"`
}

// TemplatePasswordReset is the reset-link email. Data: ResetURL, ExpiresIn.
const TemplatePasswordReset = "password_reset"
