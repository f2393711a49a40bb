// Package models содержит доменную модель регистрации пользователя:
// проверенные значения возраста и почты, состояние подтверждения почты
// и операции над пользователем.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// User представляет зарегистрированного пользователя.
//
// После создания меняется только поле Email, и только в GrantUser.
type User struct {
	UUID       string  // Идентификатор для логов, выдаётся при создании
	Name       string  // Имя, хранится как есть
	MiddleName *string // Второе имя, nil если отсутствует
	Surname    string  // Фамилия, хранится как есть
	Age        Age
	Email      UserEmail // Всегда UnverifiedEmail у нового пользователя
}

// NewUser проверяет возраст, затем почту, и собирает пользователя
// с неподтверждённым адресом. Первая ошибка прерывает создание.
func NewUser(email string, age int, name, surname string, middleName *string) (*User, error) {
	validAge, err := ValidateAge(age)
	if err != nil {
		return nil, err
	}
	validEmail, err := ValidateEmailSyntax(email)
	if err != nil {
		return nil, err
	}

	return &User{
		UUID:       uuid.NewString(),
		Name:       name,
		MiddleName: middleName,
		Surname:    surname,
		Age:        validAge,
		Email:      UnverifiedEmail{email: validEmail},
	}, nil
}

// IsVerified сообщает, подтверждена ли почта пользователя.
func (u *User) IsVerified() bool {
	_, ok := u.Email.(VerifiedEmail)
	return ok
}

// VerifiedEmail возвращает подтверждённый адрес, если он есть.
func (u *User) VerifiedEmail() (VerifiedEmail, bool) {
	e, ok := u.Email.(VerifiedEmail)
	return e, ok
}

// GrantUser пытается подтвердить почту пользователя.
//
// Уже подтверждённая почта не трогается, повторный вызов безопасен.
// При ошибке верификации поле Email остаётся прежним.
func GrantUser(user *User, v Verifier) error {
	if user == nil {
		return ErrNilUser
	}
	switch email := user.Email.(type) {
	case VerifiedEmail:
		return nil
	case UnverifiedEmail:
		verified, err := VerifyEmail(email, v)
		if err != nil {
			return err
		}
		user.Email = verified
		return nil
	default:
		// Пользователь собран в обход NewUser и адреса у него нет.
		return ErrInvalidEmailFormat
	}
}

// FullName собирает имя для отображения: имя, второе имя (если есть) и фамилию через пробел.
func FullName(user *User) string {
	parts := make([]string, 0, 3)
	parts = append(parts, user.Name)
	if user.MiddleName != nil {
		parts = append(parts, *user.MiddleName)
	}
	parts = append(parts, user.Surname)
	return strings.Join(parts, " ")
}
