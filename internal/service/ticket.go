package service

import (
	"fmt"

	"eventdeck/internal/model"

	qrcode "github.com/skip2/go-qrcode"
)

// TicketQRSize is the edge length in pixels of generated ticket QR codes.
const TicketQRSize = 256

// TicketPayload is the string encoded into a ticket's QR code. Scanners at
// the door only need the ticket id and the event it admits to.
func TicketPayload(r *model.RSVP) string {
	return fmt.Sprintf("eventdeck:ticket:%s:event:%d", r.TicketID, r.EventID)
}

// TicketPNG renders the QR code for an rsvp's ticket as a PNG.
func TicketPNG(r *model.RSVP) ([]byte, error) {
	png, err := qrcode.Encode(TicketPayload(r), qrcode.Medium, TicketQRSize)
	if err != nil {
		return nil, fmt.Errorf("TicketPNG: %w", err)
	}
	return png, nil
}
