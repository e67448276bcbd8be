package ticketdoc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDetails() *domain.TicketDetails {
	return &domain.TicketDetails{
		Ticket: domain.Ticket{ID: "t1", EventID: "e1", UserID: "u1"},
		Event: domain.Event{
			ID:       "e1",
			Title:    "Concert",
			DateTime: time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
			Location: "Main Hall",
			Category: "music",
		},
		User: domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
	}
}

func TestQRPayload(t *testing.T) {
	raw, err := QRPayload(sampleDetails())
	require.NoError(t, err)

	var p Payload
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, "t1", p.TicketID)
	assert.Equal(t, "e1", p.EventID)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "Concert", p.EventTitle)
}

func TestQRDataURL(t *testing.T) {
	url, err := QRDataURL(sampleDetails())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestPDF(t *testing.T) {
	pdf, err := PDF(sampleDetails())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Greater(t, len(pdf), 1000)
}
