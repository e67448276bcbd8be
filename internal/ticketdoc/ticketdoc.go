// Package ticketdoc renders the documents attached to a ticket: the QR
// check-in payload and the printable PDF.
package ticketdoc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrImageSize   = 200
	qrDataURLSize = 300
)

// Payload is the JSON scanned at the door.
type Payload struct {
	TicketID   string `json:"ticket_id"`
	EventID    string `json:"event_id"`
	UserID     string `json:"user_id"`
	EventTitle string `json:"event_title"`
}

func QRPayload(d *domain.TicketDetails) ([]byte, error) {
	return json.Marshal(Payload{
		TicketID:   d.Ticket.ID,
		EventID:    d.Event.ID,
		UserID:     d.User.ID,
		EventTitle: d.Event.Title,
	})
}

// QRDataURL returns the check-in QR code as a base64 PNG data URL.
func QRDataURL(d *domain.TicketDetails) (string, error) {
	payload, err := QRPayload(d)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, qrDataURLSize)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// PDF renders an A4 ticket with the event fields and an embedded QR code.
func PDF(d *domain.TicketDetails) ([]byte, error) {
	payload, err := QRPayload(d)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(payload), qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 14, "Event Ticket", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, d.Event.Title, "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket ID: %s", d.Ticket.ID),
		fmt.Sprintf("Event Date: %s", d.Event.DateTime.Format("Mon, 02 Jan 2006 15:04 MST")),
		fmt.Sprintf("Location: %s", d.Event.Location),
		fmt.Sprintf("Category: %s", d.Event.Category),
		fmt.Sprintf("Attendee: %s", d.User.Name),
		fmt.Sprintf("Email: %s", d.User.Email),
	}
	for _, line := range lines {
		doc.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pageWidth, _ := doc.GetPageSize()
	doc.ImageOptions("qr", (pageWidth-60)/2, doc.GetY(), 60, 60, false, opts, 0, "")
	doc.SetY(doc.GetY() + 64)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(128, 128, 128)
	doc.CellFormat(0, 6, "Scan QR code for check-in", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
