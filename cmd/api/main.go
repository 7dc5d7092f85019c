package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/gemini"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/gemini/geminiclient"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/odooclient"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/api"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/scheduler"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/assistant"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/reporting"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/tenancy"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver := tenancy.NewResolver(cfg.CompanyOdooIDs)

	odooClient := odooclient.NewClient(cfg)
	odooIntegrator := odoo.New(cfg, odooClient)

	geminiClient := geminiclient.NewClient(cfg)
	geminiIntegrator := gemini.New(cfg, geminiClient)

	reportingService := reporting.NewService(cfg, resolver, odooIntegrator)
	assistantService := assistant.NewService(cfg, geminiIntegrator)

	// Sonda periódica de conectividade com o Odoo
	connectionChecker := scheduler.NewConnectionCheckService(odooIntegrator, cfg)

	if err := connectionChecker.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a sonda de conectividade com o Odoo")
	} else if cfg.ConnectionCheck.Enabled {
		logrus.Info("Sonda de conectividade com o Odoo iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		assistantService,
		connectionChecker,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
