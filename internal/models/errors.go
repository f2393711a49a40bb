package models

import "errors"

// Kind задаёт закрытый перечень видов ошибок регистрации.
// Сравнивать ошибки нужно по виду, а не по тексту сообщения.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNegativeAge
	KindUnderageUser
	KindImplausibleAge
	KindInvalidEmailFormat
	KindNotYetVerified
	KindNilUser
	KindNilVerifier
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindNegativeAge:        "negative_age",
	KindUnderageUser:       "underage_user",
	KindImplausibleAge:     "implausible_age",
	KindInvalidEmailFormat: "invalid_email_format",
	KindNotYetVerified:     "not_yet_verified",
	KindNilUser:            "nil_user",
	KindNilVerifier:        "nil_verifier",
}

// String возвращает стабильную метку вида ошибки (используется в логах и метриках).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// IsValidation сообщает, относится ли вид к ошибкам валидации входных данных.
func (k Kind) IsValidation() bool {
	switch k {
	case KindNegativeAge, KindUnderageUser, KindImplausibleAge, KindInvalidEmailFormat:
		return true
	}
	return false
}

// Error описывает ошибку доменного уровня с видом и человекочитаемым сообщением.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is сравнивает ошибки по виду, поэтому errors.Is работает и с обёрнутыми ошибками.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNegativeAge        = &Error{Kind: KindNegativeAge, Msg: "age cannot be negative"}
	ErrUnderageUser       = &Error{Kind: KindUnderageUser, Msg: "service is unavailable for users younger than 13"}
	ErrImplausibleAge     = &Error{Kind: KindImplausibleAge, Msg: "age is implausibly high"}
	ErrInvalidEmailFormat = &Error{Kind: KindInvalidEmailFormat, Msg: "invalid email"}
	ErrNotYetVerified     = &Error{Kind: KindNotYetVerified, Msg: "email has not been verified yet"}
	ErrNilUser            = &Error{Kind: KindNilUser, Msg: "user is nil"}
	ErrNilVerifier        = &Error{Kind: KindNilVerifier, Msg: "verifier is nil"}
)

// KindOf достаёт вид доменной ошибки из цепочки обёрток.
// Для nil и посторонних ошибок возвращает KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
