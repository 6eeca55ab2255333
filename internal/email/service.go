package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/athletex/gym-api/internal/config"
	"github.com/athletex/gym-api/pkg/circuitbreaker"
)

// Service sends transactional mail. All sends are best-effort; callers
// log failures and carry on.
type Service interface {
	SendWelcome(to, name string) error
	SendContactNotification(senderName, senderEmail, subject, message string) error
}

type smtpService struct {
	dialer     *gomail.Dialer
	breaker    *circuitbreaker.CircuitBreaker
	from       string
	adminInbox string
}

// NewService builds the gomail-backed sender. Returns a no-op sender
// when SMTP is not configured so local setups run without a mail host.
// A circuit breaker stops repeated dials against a dead SMTP host from
// stalling request handlers.
func NewService(cfg config.SMTPConfig) Service {
	if cfg.Host == "" {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "smtp",
			MaxRequests: 3,
			Interval:    time.Minute,
			Timeout:     2 * time.Minute,
		}),
		from:       cfg.From,
		adminInbox: cfg.AdminInbox,
	}
}

func (s *smtpService) SendWelcome(to, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to AthleteX")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour AthleteX account is ready. Book a session or pick a membership plan whenever you're ready to train.\n\nSee you at the gym!",
		name,
	))
	return s.send(m)
}

func (s *smtpService) SendContactNotification(senderName, senderEmail, subject, message string) error {
	if s.adminInbox == "" {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.adminInbox)
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", subject))
	m.SetBody("text/plain", fmt.Sprintf(
		"New contact message from %s <%s>:\n\n%s",
		senderName, senderEmail, message,
	))
	return s.send(m)
}

func (s *smtpService) send(m *gomail.Message) error {
	return s.breaker.Execute(func() error {
		return s.dialer.DialAndSend(m)
	})
}

type noopService struct{}

func (n *noopService) SendWelcome(_, _ string) error { return nil }

func (n *noopService) SendContactNotification(_, _, _, _ string) error { return nil }
