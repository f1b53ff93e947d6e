package create_reservation_request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
	"github.com/m04kA/SLB-ReservationService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		SessionID: "b3f1c9d2-4a7e-4f1b-9c2d-8e5a6b7c8d9e",
		UserID:    42,
		Name:      "Танака Юки",
		Contact:   "+81-90-1234-5678",
		Notes:     ptr.Ptr("столик у окна"),
	}
}

func TestValidateRequest_OK(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))

	// Notes опциональны
	req := validRequest()
	req.Notes = nil
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"empty session id", func(r *Request) { r.SessionID = "" }},
		{"zero user id", func(r *Request) { r.UserID = 0 }},
		{"negative user id", func(r *Request) { r.UserID = -1 }},
		{"empty name", func(r *Request) { r.Name = "" }},
		{"whitespace name", func(r *Request) { r.Name = "   " }},
		{"empty contact", func(r *Request) { r.Contact = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func TestValidateRequest_LengthLimits(t *testing.T) {
	req := validRequest()
	req.Name = strings.Repeat("a", domain.MaxNameLength+1)
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Contact = strings.Repeat("b", domain.MaxContactLength+1)
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Notes = ptr.Ptr(strings.Repeat("c", domain.MaxNotesLength+1))
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}
