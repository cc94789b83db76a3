package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	commentusecases "soapbox/internal/application/comment/usecases"
	"soapbox/internal/shared/config"
	"soapbox/internal/shared/logger"
)

// SMTPNotifier delivers subscription emails over SMTP. When email delivery is
// disabled in configuration, notifications are dropped silently so the rest
// of the system behaves identically with and without a mail server.
type SMTPNotifier struct {
	config  config.EmailConfig
	baseURL string
	dialer  *gomail.Dialer
	logger  logger.Interface
}

func NewSMTPNotifier(cfg config.EmailConfig, baseURL string, log logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password)

	return &SMTPNotifier{
		config:  cfg,
		baseURL: baseURL,
		dialer:  dialer,
		logger:  log,
	}
}

// NotifyNewComment sends one message per subscribed address. A failure for
// one recipient does not stop delivery to the rest.
func (s *SMTPNotifier) NotifyNewComment(ctx context.Context, n commentusecases.NewCommentNotification) error {
	if !s.config.Enabled {
		s.logger.Debugw("email delivery disabled, skipping notification",
			"comment_id", n.CommentID, "recipients", len(n.Recipients))
		return nil
	}

	ticketURL := fmt.Sprintf("%s/tickets/%s#comment-%d", s.baseURL, n.TicketSlug, n.CommentID)
	subject := fmt.Sprintf("New comment on %s", n.TicketTitle)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New comment on %s</h2>
			<p>%s</p>
			<p><a href="%s">View the conversation</a></p>
			<p>You are receiving this because you subscribed to this ticket.</p>
		</body>
		</html>
	`, n.TicketTitle, n.Excerpt, ticketURL)

	plainBody := fmt.Sprintf(`
New comment on %s

%s

View the conversation:
%s

You are receiving this because you subscribed to this ticket.
	`, n.TicketTitle, n.Excerpt, ticketURL)

	var lastErr error
	for _, recipient := range n.Recipients {
		if err := s.sendEmail(recipient, subject, htmlBody, plainBody); err != nil {
			s.logger.Errorw("failed to deliver comment notification",
				"error", err, "recipient", recipient, "comment_id", n.CommentID)
			lastErr = err
		}
	}
	return lastErr
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
