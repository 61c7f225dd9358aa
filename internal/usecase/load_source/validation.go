package load_source

import (
	"fmt"
	"strings"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SourceID) == "" {
		return fmt.Errorf("%w: source id is required", ErrInvalidInput)
	}
	return nil
}
