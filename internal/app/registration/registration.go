// Package registration собирает зависимости процесса регистрации
// и выполняет сценарий точки входа.
package registration

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/user-registration/internal/config"
	"github.com/magabrotheeeer/user-registration/internal/lib/sl"
	"github.com/magabrotheeeer/user-registration/internal/lib/verification"
	"github.com/magabrotheeeer/user-registration/internal/metrics"
	"github.com/magabrotheeeer/user-registration/internal/models"
	regservice "github.com/magabrotheeeer/user-registration/internal/services/registration"
)

type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	out      io.Writer
	service  *regservice.Service
	registry *prometheus.Registry
}

func New(cfg *config.Config, logger *slog.Logger, out io.Writer) (*App, error) {
	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		return nil, err
	}

	verifier := verification.NewSubstring(cfg.Marker)
	service, err := regservice.NewService(logger, verifier, m)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		service:  service,
		registry: registry,
	}, nil
}

// Run создаёт пользователя из конфига, приветствует его и пытается подтвердить почту.
// Любая ошибка создания или подтверждения возвращается вызывающему.
func (a *App) Run(ctx context.Context) error {
	const op = "app.registration.Run"
	defer a.flushMetrics()

	user, err := a.service.CreateUser(ctx, regservice.Input{
		Email:      a.cfg.Email,
		Age:        a.cfg.Age,
		Name:       a.cfg.Name,
		Surname:    a.cfg.Surname,
		MiddleName: a.cfg.MiddleNamePtr(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := fmt.Fprintf(a.out, "Welcome %s of %d years old\n", models.FullName(user), user.Age.Value()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := a.service.GrantUser(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if verified, ok := user.VerifiedEmail(); ok {
		if _, err := fmt.Fprintf(a.out, "User email %s is verified!\n", verified.Address()); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

func (a *App) flushMetrics() {
	if a.cfg.TextfilePath == "" {
		return
	}
	if err := metrics.WriteTextfile(a.cfg.TextfilePath, a.registry); err != nil {
		a.logger.Error("failed to write metrics", sl.Err(err))
		return
	}
	a.logger.Debug("metrics written", slog.String("path", a.cfg.TextfilePath))
}
