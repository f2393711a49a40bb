package models

import "regexp"

// wordClass: «символ слова» в юникодном смысле (буквы, метки, цифры,
// соединители), а не только [0-9A-Za-z_], как \w в RE2.
const wordClass = `\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}\x{200C}\x{200D}`

// emailPattern: local@domain.tld.
var emailPattern = regexp.MustCompile(`^[` + wordClass + `.]+@[` + wordClass + `.]+\.[` + wordClass + `]+$`)

// Email хранит адрес, прошедший синтаксическую проверку.
// Строка хранится как есть, без нормализации регистра и пробелов.
type Email struct {
	value string
}

// ValidateEmailSyntax оборачивает raw в Email, если строка целиком
// соответствует шаблону, иначе возвращает ErrInvalidEmailFormat.
func ValidateEmailSyntax(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, ErrInvalidEmailFormat
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }

// Equals сравнивает адреса по содержимому.
func (e Email) Equals(other Email) bool { return e.value == other.value }

// UserEmail хранит адрес пользователя в одном из двух состояний:
// UnverifiedEmail или VerifiedEmail. Других реализаций нет.
type UserEmail interface {
	Address() Email
	userEmail()
}

// UnverifiedEmail описывает адрес, который ещё не подтверждён.
type UnverifiedEmail struct {
	email Email
}

// Address возвращает исходный адрес.
func (e UnverifiedEmail) Address() Email { return e.email }
func (UnverifiedEmail) userEmail()       {}

// VerifiedEmail описывает подтверждённый адрес. Создаётся только через VerifyEmail.
type VerifiedEmail struct {
	email Email
}

// Address возвращает исходный адрес.
func (e VerifiedEmail) Address() Email { return e.email }
func (VerifiedEmail) userEmail()       {}

// Verifier решает, подтверждён ли адрес внешним каналом.
type Verifier interface {
	Verify(email Email) bool
}

// VerifyEmail переводит адрес из UnverifiedEmail в VerifiedEmail.
// Содержимое адреса не меняется; при отказе верификатора возвращается ErrNotYetVerified.
func VerifyEmail(email UnverifiedEmail, v Verifier) (VerifiedEmail, error) {
	if v == nil {
		return VerifiedEmail{}, ErrNilVerifier
	}
	if !v.Verify(email.email) {
		return VerifiedEmail{}, ErrNotYetVerified
	}
	return VerifiedEmail{email: email.email}, nil
}
