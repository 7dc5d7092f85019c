package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
)

// ConnectionCheckConfig representa a configuração da sonda de conectividade
// com o Odoo.
type ConnectionCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// ConnectionCheckService agenda autenticações de ida e volta contra o Odoo
// para que problemas de credencial ou de rede apareçam no diagnóstico antes
// do primeiro usuário reclamar. A sonda nunca consulta nem guarda dados de
// vendas.
type ConnectionCheckService struct {
	scheduler   *gocron.Scheduler
	config      ConnectionCheckConfig
	odooService odoo.OdooIntegrator

	mu            sync.Mutex
	lastCheckedAt time.Time
	lastErr       error
}

func NewConnectionCheckService(odooService odoo.OdooIntegrator, appConfig *config.Config) *ConnectionCheckService {
	checkConfig := ConnectionCheckConfig{
		CronSchedule: appConfig.ConnectionCheck.CronSchedule,
		Enabled:      appConfig.ConnectionCheck.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração da sonda de conectividade com o Odoo carregada")

	return &ConnectionCheckService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      checkConfig,
		odooService: odooService,
	}
}

// Start inicia o agendador
func (s *ConnectionCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sonda de conectividade com o Odoo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando sonda de conectividade com o Odoo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCheck()
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar sonda de conectividade com o Odoo")
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando sonda de conectividade com o Odoo")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckNow executa uma verificação síncrona e devolve o status resultante.
// Usado pelo endpoint de diagnóstico para dar resposta ao vivo.
func (s *ConnectionCheckService) CheckNow() domain.OdooConnectionStatus {
	s.runCheck()
	return s.Status()
}

// Status devolve o resultado da última verificação.
func (s *ConnectionCheckService) Status() domain.OdooConnectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := domain.OdooConnectionStatus{
		Enabled:   s.config.Enabled,
		Connected: !s.lastCheckedAt.IsZero() && s.lastErr == nil,
	}

	if !s.lastCheckedAt.IsZero() {
		checkedAt := s.lastCheckedAt
		status.LastCheckedAt = &checkedAt
	}

	if s.lastErr != nil {
		status.Error = s.lastErr.Error()
	}

	return status
}

func (s *ConnectionCheckService) runCheck() {
	err := s.odooService.CheckConnection()

	s.mu.Lock()
	s.lastCheckedAt = time.Now()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		logrus.WithError(err).Warn("Sonda de conectividade: falha ao autenticar no Odoo")
		return
	}

	logrus.Debug("Sonda de conectividade: autenticação no Odoo bem-sucedida")
}
