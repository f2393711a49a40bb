package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-registration/internal/lib/verification"
	"github.com/magabrotheeeer/user-registration/internal/models"
)

func TestValidateEmailSyntax_Valid(t *testing.T) {
	valid := []string{
		"foo@ok.com",
		"foo@unverified.com",
		"first.last@mail.example.org",
		"user_1@sub.domain.io",
		"UPPER@CASE.COM",
		"a@b.c",
		"x@y.co_uk",
		"josé@ok.com",
		"müller@beispiel.de",
		"用户@例子.公司",
		"иван.петров@почта.рф",
	}

	for _, raw := range valid {
		t.Run(raw, func(t *testing.T) {
			email, err := models.ValidateEmailSyntax(raw)
			require.NoError(t, err)
			// Адрес возвращается без изменений
			assert.Equal(t, raw, email.String())
		})
	}
}

func TestValidateEmailSyntax_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"foo.at.com",
		"foo@com",
		"@ok.com",
		"foo@.com.",
		" foo@ok.com",
		"foo@ok.com ",
		"foo+tag@ok.com",
		"foo@ok-site.com",
		"foo@@ok.com",
		"foo@ok.",
		"josé@ok-site.com",
		"用户@例子",
	}

	for _, raw := range invalid {
		t.Run(raw, func(t *testing.T) {
			_, err := models.ValidateEmailSyntax(raw)
			assert.ErrorIs(t, err, models.ErrInvalidEmailFormat)
		})
	}
}

func TestEmail_Equals(t *testing.T) {
	a, err := models.ValidateEmailSyntax("foo@ok.com")
	require.NoError(t, err)
	b, err := models.ValidateEmailSyntax("foo@ok.com")
	require.NoError(t, err)
	c, err := models.ValidateEmailSyntax("Foo@ok.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestVerifyEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "marker present", email: "foo@ok.com"},
		{name: "marker in local part", email: "okay@mail.com"},
		{name: "marker absent", email: "foo@unverified.com", wantErr: models.ErrNotYetVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := models.NewUser(tt.email, 30, "Luca", "Rossi", nil)
			require.NoError(t, err)
			unverified, ok := user.Email.(models.UnverifiedEmail)
			require.True(t, ok)

			verified, err := models.VerifyEmail(unverified, verification.NewSubstring("ok"))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, verified.Address().Equals(unverified.Address()))
		})
	}
}

func TestVerifyEmail_NilVerifier(t *testing.T) {
	user, err := models.NewUser("foo@ok.com", 30, "Luca", "Rossi", nil)
	require.NoError(t, err)
	unverified, ok := user.Email.(models.UnverifiedEmail)
	require.True(t, ok)

	_, err = models.VerifyEmail(unverified, nil)
	assert.ErrorIs(t, err, models.ErrNilVerifier)
}
