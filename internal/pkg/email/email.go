package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ComplaintCreatedData carries the fields of the submission acknowledgement.
type ComplaintCreatedData struct {
	To         string
	UserName   string
	TicketID   string
	Subject    string
	Category   string
	Priority   string
	Department string
}

// StatusUpdateData carries the fields of the status-change notification.
type StatusUpdateData struct {
	To       string
	UserName string
	TicketID string
	Subject  string
	Status   string
	Remarks  string
}

// DepartmentAlertData carries the fields of the action-required alert sent to
// the routed department and the admin inbox.
type DepartmentAlertData struct {
	To          string
	TicketID    string
	Subject     string
	Category    string
	Priority    string
	UserName    string
	Description string
}

// Mailer defines the interface for outbound helpdesk notifications.
// All sends are best-effort; callers log failures and move on.
type Mailer interface {
	SendComplaintCreated(data ComplaintCreatedData) error
	SendStatusUpdate(data StatusUpdateData) error
	SendDepartmentAlert(data DepartmentAlertData) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// SMTPMailer implements Mailer over net/smtp
type SMTPMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(config SMTPConfig, logger zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		logger: logger,
	}
}

// SendComplaintCreated sends the submission acknowledgement to the creator.
func (s *SMTPMailer) SendComplaintCreated(data ComplaintCreatedData) error {
	if s.devFallback("complaint created", data.To, data.TicketID) {
		return nil
	}

	subject := fmt.Sprintf("[%s] Complaint Registered - %s", data.TicketID, data.Subject)
	body := fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
			<div style="background:#1a2942;padding:20px;text-align:center;">
				<h2 style="color:#ff6b35;margin:0;">MRU Campus Helpdesk</h2>
			</div>
			<div style="background:#fff;padding:30px;border:1px solid #e5e7eb;">
				<h3>Complaint Registered</h3>
				<p>Dear <strong>%s</strong>,</p>
				<p>Your complaint has been registered and routed to <strong>%s</strong> department.</p>
				<table style="width:100%%;border-collapse:collapse;margin:20px 0;">
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;width:40%%;">Ticket ID</td><td style="padding:8px;">%s</td></tr>
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;">Subject</td><td style="padding:8px;">%s</td></tr>
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;">Category</td><td style="padding:8px;">%s</td></tr>
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;">Priority</td><td style="padding:8px;">%s</td></tr>
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;">Status</td><td style="padding:8px;color:#f59e0b;">Pending</td></tr>
				</table>
				<p>You will receive updates as your complaint progresses.</p>
			</div>
		</div>
	`, data.UserName, data.Department, data.TicketID, data.Subject, data.Category, data.Priority)

	return s.sendHTMLEmail(data.To, subject, body)
}

// SendStatusUpdate notifies the complaint creator of a status change.
func (s *SMTPMailer) SendStatusUpdate(data StatusUpdateData) error {
	if s.devFallback("status update", data.To, data.TicketID) {
		return nil
	}

	statusLabel := strings.ReplaceAll(data.Status, "_", " ")
	subject := fmt.Sprintf("[%s] Status Updated - %s", data.TicketID, statusLabel)

	remarks := ""
	if data.Remarks != "" {
		remarks = fmt.Sprintf("<p><strong>Remarks:</strong> %s</p>", data.Remarks)
	}

	body := fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
			<div style="background:#1a2942;padding:20px;text-align:center;">
				<h2 style="color:#ff6b35;margin:0;">MRU Campus Helpdesk</h2>
			</div>
			<div style="background:#fff;padding:30px;border:1px solid #e5e7eb;">
				<h3>Complaint Status Updated</h3>
				<p>Dear <strong>%s</strong>,</p>
				<p>Your complaint <strong>%s</strong> status has been updated to: <strong>%s</strong></p>
				%s
			</div>
		</div>
	`, data.UserName, data.TicketID, strings.ToUpper(statusLabel), remarks)

	return s.sendHTMLEmail(data.To, subject, body)
}

// SendDepartmentAlert notifies a department (or the admin inbox) that a new
// complaint needs attention.
func (s *SMTPMailer) SendDepartmentAlert(data DepartmentAlertData) error {
	if s.devFallback("department alert", data.To, data.TicketID) {
		return nil
	}

	subject := fmt.Sprintf("[ACTION REQUIRED] New Complaint: %s", data.TicketID)
	body := fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
			<div style="background:#1a2942;padding:20px;text-align:center;">
				<h2 style="color:#ff6b35;margin:0;">New Complaint Assigned</h2>
			</div>
			<div style="background:#fff;padding:30px;border:1px solid #e5e7eb;">
				<h3>Action Required</h3>
				<table style="width:100%%;border-collapse:collapse;">
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;width:40%%;">Ticket ID</td><td style="padding:8px;">%s</td></tr>
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;">User</td><td style="padding:8px;">%s</td></tr>
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;">Subject</td><td style="padding:8px;">%s</td></tr>
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;">Priority</td><td style="padding:8px;">%s</td></tr>
					<tr><td style="padding:8px;background:#f8f9fa;font-weight:bold;">Description</td><td style="padding:8px;">%s</td></tr>
				</table>
				<p>Please login to the portal to take action.</p>
			</div>
		</div>
	`, data.TicketID, data.UserName, data.Subject, data.Priority, data.Description)

	return s.sendHTMLEmail(data.To, subject, body)
}

// devFallback logs instead of sending when SMTP credentials are absent, so
// local development does not require a mail server. Returns true when the
// send should be skipped.
func (s *SMTPMailer) devFallback(kind, to, ticketID string) bool {
	if s.config.Username != "" && s.config.Password != "" {
		return false
	}
	s.logger.Warn().
		Str("kind", kind).
		Str("to", to).
		Str("ticketId", ticketID).
		Msg("SMTP credentials not configured - notification not sent")
	return true
}

// sendHTMLEmail sends an HTML email
func (s *SMTPMailer) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
			ServerName:         s.config.Host,
		}

		conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to create SMTP client")
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}
		if err = client.Rcpt(toEmail); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}
		if _, err = w.Write([]byte(message)); err != nil {
			return fmt.Errorf("failed to write email message: %w", err)
		}
		if err = w.Close(); err != nil {
			return fmt.Errorf("failed to close data writer: %w", err)
		}

		return nil
	}

	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
