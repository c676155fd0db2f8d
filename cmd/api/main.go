package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/Rerimoura/venn-biz/infrastructure/database/postgres"
	"github.com/Rerimoura/venn-biz/infrastructure/repository"
	"github.com/Rerimoura/venn-biz/internal/api"
	"github.com/Rerimoura/venn-biz/internal/config"
	"github.com/Rerimoura/venn-biz/internal/scheduler"
	"github.com/Rerimoura/venn-biz/internal/usecases/authenticating"
	"github.com/Rerimoura/venn-biz/internal/usecases/crossselling"
	"github.com/Rerimoura/venn-biz/internal/usecases/exporting"
	"github.com/Rerimoura/venn-biz/internal/usecases/referencing"
	"github.com/Rerimoura/venn-biz/pkg/cache"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Caches separados: a consulta de vendas expira mais rápido que as
	// listas de referência dos seletores.
	salesCache := cache.New(cfg.Cache.SalesTTL)
	referenceCache := cache.New(cfg.Cache.ReferenceTTL)

	crossSellService := crossselling.NewService(saleRepo, salesCache, cfg)
	referenceService := referencing.NewService(saleRepo, referenceCache, cfg)
	exporterService := exporting.NewService()

	// Inicializa o agendador de aquecimento das listas de referência
	warmupService := scheduler.NewReferenceWarmupService(referenceService, cfg)

	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento das listas de referência")
	} else {
		logrus.Info("Agendador de aquecimento das listas de referência iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		crossSellService,
		referenceService,
		exporterService,
		authenticator,
		warmupService,
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
