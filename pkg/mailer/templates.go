package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var resetTpl = template.Must(template.New("password_reset").Parse(`
<div style="max-width: 600px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif;">
  <h2 style="color: #333;">Password Reset Request</h2>
  <p>Hello,</p>
  <p>You requested to reset your password for the Course Management System.</p>
  <p>Click the button below to reset your password:</p>
  <a href="{{.ResetURL}}" style="display: inline-block; padding: 12px 24px; background-color: #007bff; color: white; text-decoration: none; border-radius: 4px; margin: 20px 0;">
    Reset Password
  </a>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">{{.ResetURL}}</p>
  <p><strong>Note:</strong> This link will expire in {{.ExpiresIn}}.</p>
  <p>If you didn't request this password reset, please ignore this email.</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
  <p style="color: #666; font-size: 14px;">
    This is an automated message from the Course Management System. Please do not reply to this email.
  </p>
</div>`))

// Render produces subject, text and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplatePasswordReset:
		var buf bytes.Buffer
		if err = resetTpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Password Reset Request - Course Management System"
		text = fmt.Sprintf("Reset your password: %v (expires in %v)", data["ResetURL"], data["ExpiresIn"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
