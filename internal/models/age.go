package models

import "strconv"

// Допустимый возраст пользователя, границы включительно.
const (
	MinAge = 13
	MaxAge = 120
)

// Age хранит возраст, прошедший проверку ValidateAge.
// Нулевое значение не считается валидным и встречается только вместе с ошибкой.
type Age struct {
	value int
}

// ValidateAge проверяет сырое значение возраста.
//
// Порядок проверок важен: отрицательное значение даёт ErrNegativeAge,
// хотя оно же меньше MinAge.
func ValidateAge(raw int) (Age, error) {
	switch {
	case raw < 0:
		return Age{}, ErrNegativeAge
	case raw < MinAge:
		return Age{}, ErrUnderageUser
	case raw > MaxAge:
		return Age{}, ErrImplausibleAge
	}
	return Age{value: raw}, nil
}

// Value возвращает возраст в годах.
func (a Age) Value() int { return a.value }

func (a Age) String() string { return strconv.Itoa(a.value) }
