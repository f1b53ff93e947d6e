package create_session

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
// Сырой фид и defaultStartAt глубоко не проверяются: движок обязан
// переживать мусор (битые даты дают сквозные подписи, нечитаемый
// defaultStartAt молча игнорируется инъекцией)
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	return nil
}
