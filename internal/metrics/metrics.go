// Package metrics описывает счётчики процесса регистрации.
//
// Сетевой выдачи нет: реестр можно выгрузить в файл для textfile-коллектора
// node_exporter через WriteTextfile.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/user-registration/internal/models"
)

// Значения метки result помимо видов ошибок.
const (
	ResultOK              = "ok"
	ResultAlreadyVerified = "already_verified"
)

// Metrics хранит счётчики создания пользователей и подтверждения почты.
type Metrics struct {
	UsersCreated *prometheus.CounterVec
	EmailGrants  *prometheus.CounterVec
}

// New создаёт счётчики и регистрирует их в reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	const op = "metrics.New"
	m := &Metrics{
		UsersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "registration",
			Name:      "users_created_total",
			Help:      "Попытки создания пользователя по результату.",
		}, []string{"result"}),
		EmailGrants: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "registration",
			Name:      "email_grants_total",
			Help:      "Попытки подтверждения почты по результату.",
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{m.UsersCreated, m.EmailGrants} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return m, nil
}

// ObserveCreate учитывает результат создания пользователя.
func (m *Metrics) ObserveCreate(err error) {
	m.UsersCreated.WithLabelValues(result(err)).Inc()
}

// ObserveGrant учитывает результат подтверждения почты.
func (m *Metrics) ObserveGrant(wasVerified bool, err error) {
	if err == nil && wasVerified {
		m.EmailGrants.WithLabelValues(ResultAlreadyVerified).Inc()
		return
	}
	m.EmailGrants.WithLabelValues(result(err)).Inc()
}

// WriteTextfile выгружает все метрики из g в файл path в текстовом формате Prometheus.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	const op = "metrics.WriteTextfile"
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func result(err error) string {
	if err == nil {
		return ResultOK
	}
	return models.KindOf(err).String()
}
