// Package registration содержит бизнес-логику регистрации пользователя:
// создание с проверкой входных данных и подтверждение почты.
package registration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/user-registration/internal/lib/sl"
	"github.com/magabrotheeeer/user-registration/internal/models"
)

// Recorder учитывает результаты операций (см. пакет metrics).
type Recorder interface {
	ObserveCreate(err error)
	ObserveGrant(wasVerified bool, err error)
}

// Input сырые данные для создания пользователя.
type Input struct {
	Email      string
	Age        int
	Name       string
	Surname    string
	MiddleName *string
}

// Service отвечает за создание пользователей и подтверждение их почты.
type Service struct {
	log      *slog.Logger
	verifier models.Verifier
	recorder Recorder
}

// NewService создает новый экземпляр Service.
// Верификатор обязателен: без него подтвердить почту нельзя.
func NewService(log *slog.Logger, verifier models.Verifier, recorder Recorder) (*Service, error) {
	const op = "services.registration.NewService"
	if verifier == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNilVerifier)
	}
	return &Service{
		log:      log,
		verifier: verifier,
		recorder: recorder,
	}, nil
}

// CreateUser проверяет возраст и почту и создаёт пользователя с неподтверждённым адресом.
func (s *Service) CreateUser(ctx context.Context, in Input) (*models.User, error) {
	const op = "services.registration.CreateUser"
	log := s.log.With(sl.Op(op))

	user, err := models.NewUser(in.Email, in.Age, in.Name, in.Surname, in.MiddleName)
	s.recorder.ObserveCreate(err)
	if err != nil {
		log.WarnContext(ctx, "user rejected", sl.Err(err), sl.Kind(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.InfoContext(ctx, "user created",
		slog.String("user_uuid", user.UUID),
		slog.Int("age", user.Age.Value()),
	)
	return user, nil
}

// GrantUser пытается подтвердить почту пользователя.
// Для уже подтверждённой почты ничего не делает и возвращает nil.
func (s *Service) GrantUser(ctx context.Context, user *models.User) error {
	const op = "services.registration.GrantUser"
	log := s.log.With(sl.Op(op))

	wasVerified := user != nil && user.IsVerified()
	err := models.GrantUser(user, s.verifier)
	s.recorder.ObserveGrant(wasVerified, err)
	if err != nil {
		log.WarnContext(ctx, "email not granted", sl.Err(err), sl.Kind(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if wasVerified {
		log.DebugContext(ctx, "email already verified", slog.String("user_uuid", user.UUID))
		return nil
	}
	log.InfoContext(ctx, "email verified", slog.String("user_uuid", user.UUID))
	return nil
}
