// Package sl содержит вспомогательные функции для логгера slog:
// единообразные атрибуты для ошибок и операций.
package sl

import (
	"log/slog"

	"github.com/magabrotheeeer/user-registration/internal/models"
)

// ErrKey ключ атрибута с текстом ошибки.
const ErrKey = "error"

// Err возвращает атрибут ErrKey с текстом ошибки; для nil пишется "<nil>".
//
//	log.Warn("user rejected", sl.Err(err), sl.Kind(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(ErrKey, "<nil>")
	}
	return slog.String(ErrKey, err.Error())
}

// Kind возвращает атрибут "kind" с меткой вида доменной ошибки.
func Kind(err error) slog.Attr {
	return slog.String("kind", models.KindOf(err).String())
}

// Op возвращает атрибут "op" с именем операции.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}
