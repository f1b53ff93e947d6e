package create_reservation_request

import (
	"fmt"
	"strings"

	"github.com/m04kA/SLB-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	contact := strings.TrimSpace(req.Contact)
	if contact == "" {
		return fmt.Errorf("%w: contact is required", ErrInvalidInput)
	}
	if len(contact) > domain.MaxContactLength {
		return fmt.Errorf("%w: contact exceeds %d characters", ErrInvalidInput, domain.MaxContactLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
