// Package verification содержит реализации models.Verifier.
//
// Substring служит заглушкой вместо настоящего канала подтверждения (ссылка или код из письма).
// Адрес считается подтверждённым, если содержит маркер.
package verification

import (
	"strings"

	"github.com/magabrotheeeer/user-registration/internal/models"
)

// DefaultMarker задаёт маркер, которым по умолчанию помечены «подтверждённые» адреса.
const DefaultMarker = "ok"

// Substring подтверждает адрес, если в нём встречается Marker.
type Substring struct {
	Marker string
}

// NewSubstring создаёт верификатор; пустой marker заменяется на DefaultMarker.
func NewSubstring(marker string) Substring {
	if marker == "" {
		marker = DefaultMarker
	}
	return Substring{Marker: marker}
}

// Verify реализует models.Verifier.
func (s Substring) Verify(email models.Email) bool {
	return strings.Contains(email.String(), s.Marker)
}

// Func позволяет использовать обычную функцию как models.Verifier.
type Func func(email models.Email) bool

// Verify реализует models.Verifier.
// Нулевая функция ничего не подтверждает.
func (f Func) Verify(email models.Email) bool {
	if f == nil {
		return false
	}
	return f(email)
}
