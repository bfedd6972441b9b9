package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/integrator/platform"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/integrator/platform/platformclient"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/budget-optimizer-api/internal/api"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
	"github.com/vfg2006/budget-optimizer-api/internal/scheduler"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/auditing"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/deciding"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/reconciling"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/ruling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	spendRepo := repository.NewSpendRecordRepository(pgConn)
	performanceRepo := repository.NewAdPerformanceRepository(pgConn)
	modificationRepo := repository.NewBudgetModificationRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	platformClient := platformclient.NewClient(cfg)
	platformIntegrator := platform.New(cfg, platformClient)

	reconcilingService := reconciling.NewService(
		accountRepo,
		userRepo,
		spendRepo,
		performanceRepo,
		platformIntegrator,
		cfg,
	)

	auditService := auditing.NewService(modificationRepo)
	decisionService := deciding.NewService(modificationRepo, cfg)
	rulingService := ruling.NewService(platformIntegrator, auditService)

	spendSyncService := scheduler.NewSpendSyncService(reconcilingService, cfg)

	if err := spendSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de gastos")
	} else {
		logrus.Info("Agendador de sincronização de gastos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		decisionService,
		rulingService,
		auditService,
		reconcilingService,
		spendSyncService,
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
