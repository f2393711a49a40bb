package registration_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-registration/internal/app/registration"
	"github.com/magabrotheeeer/user-registration/internal/config"
	"github.com/magabrotheeeer/user-registration/internal/models"
)

func defaultConfig() *config.Config {
	return &config.Config{
		Env: "test",
		SampleUser: config.SampleUser{
			Email:   "foo@ok.com",
			Age:     22,
			Name:    "Luca",
			Surname: "Rossi",
		},
		Verification: config.Verification{Marker: "ok"},
	}
}

func run(t *testing.T, cfg *config.Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := registration.New(cfg, logger, &out)
	require.NoError(t, err)

	err = app.Run(context.Background())
	return out.String(), err
}

func TestApp_Run_Verified(t *testing.T) {
	out, err := run(t, defaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Welcome Luca Rossi of 22 years old\nUser email foo@ok.com is verified!\n", out)
}

func TestApp_Run_MiddleName(t *testing.T) {
	cfg := defaultConfig()
	cfg.MiddleName = "Maria"

	out, err := run(t, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome Luca Maria Rossi of 22 years old\n")
}

func TestApp_Run_NotVerified(t *testing.T) {
	cfg := defaultConfig()
	cfg.Email = "foo@unverified.com"

	out, err := run(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotYetVerified)

	// Приветствие выводится, а строка о подтверждении нет
	assert.Equal(t, "Welcome Luca Rossi of 22 years old\n", out)
}

func TestApp_Run_CreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		age     int
		wantErr error
	}{
		{name: "invalid email", email: "foo.at.com", age: 22, wantErr: models.ErrInvalidEmailFormat},
		{name: "negative age", email: "fo@ok.com", age: -100, wantErr: models.ErrNegativeAge},
		{name: "immortal", email: "fo@ok.com", age: 130, wantErr: models.ErrImplausibleAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Email = tt.email
			cfg.Age = tt.age

			out, err := run(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "app.registration.Run")
			assert.Empty(t, out)
		})
	}
}

func TestApp_Run_WritesMetrics(t *testing.T) {
	cfg := defaultConfig()
	cfg.TextfilePath = filepath.Join(t.TempDir(), "registration.prom")

	_, err := run(t, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.TextfilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `registration_users_created_total{result="ok"} 1`)
	assert.Contains(t, string(data), `registration_email_grants_total{result="ok"} 1`)
}

func TestApp_Run_WritesMetricsOnFailure(t *testing.T) {
	cfg := defaultConfig()
	cfg.Age = 5
	cfg.TextfilePath = filepath.Join(t.TempDir(), "registration.prom")

	_, err := run(t, cfg)
	require.ErrorIs(t, err, models.ErrUnderageUser)

	data, err := os.ReadFile(cfg.TextfilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `registration_users_created_total{result="underage_user"} 1`)
}
