package notification

import (
	"context"
	"fmt"
	"io"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/rahmedalmosd25-ux/eventhub/internal/ticketdoc"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

// EmailNotifier delivers ticket emails over SMTP. Delivery is best effort:
// every failure is logged and swallowed, a booking never fails because of it.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewEmailNotifier(cfg SMTPConfig, log logger.Logger) *EmailNotifier {
	if cfg.Host == "" {
		log.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{dialer: nil, logger: log}
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: log,
	}
}

func (n *EmailNotifier) NotifyTicketBooked(ctx context.Context, d *domain.TicketDetails) {
	subject := fmt.Sprintf("Your ticket for %s", d.Event.Title)
	body := fmt.Sprintf(
		"Hi %s,<br><br>Your ticket for <b>%s</b> is confirmed.<br>"+
			"Date: %s<br>Location: %s<br><br>"+
			"Your ticket with QR code is attached. Show it at the entrance.",
		d.User.Name, d.Event.Title,
		d.Event.DateTime.Format("Mon, 02 Jan 2006 15:04 MST"),
		d.Event.Location,
	)
	n.send(ctx, d, subject, body, true)
}

func (n *EmailNotifier) NotifyEventReminder(ctx context.Context, d *domain.TicketDetails) {
	subject := fmt.Sprintf("Reminder: %s is coming up", d.Event.Title)
	body := fmt.Sprintf(
		"Hi %s,<br><br><b>%s</b> starts on %s at %s.<br>"+
			"Don't forget your ticket!",
		d.User.Name, d.Event.Title,
		d.Event.DateTime.Format("Mon, 02 Jan 2006 15:04 MST"),
		d.Event.Location,
	)
	n.send(ctx, d, subject, body, false)
}

func (n *EmailNotifier) send(ctx context.Context, d *domain.TicketDetails, subject, body string, attachTicket bool) {
	if n.dialer == nil {
		n.logger.Debug("email skipped (smtp disabled)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)",
			logger.String("to", d.User.Email),
		)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", d.User.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if attachTicket {
		pdf, err := ticketdoc.PDF(d)
		if err != nil {
			n.logger.Error("failed to render ticket pdf",
				logger.String("ticket_id", d.Ticket.ID),
				logger.String("error", err.Error()),
			)
		} else {
			msg.Attach(
				fmt.Sprintf("ticket-%s.pdf", d.Ticket.ID),
				gomail.SetCopyFunc(func(w io.Writer) error {
					_, err := w.Write(pdf)
					return err
				}),
			)
		}
	}

	if err := n.dialer.DialAndSend(msg); err != nil {
		n.logger.Error("failed to send email",
			logger.String("to", d.User.Email),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}
