package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/ecoledger/internal/config"
	"github.com/fsdevblog/ecoledger/internal/metrics"
	"github.com/fsdevblog/ecoledger/internal/repository/pgrepo"
	"github.com/fsdevblog/ecoledger/internal/repository/redisrepo"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/internal/service"
	"github.com/fsdevblog/ecoledger/internal/service/codegen"
	"github.com/fsdevblog/ecoledger/internal/service/psswd"
	"github.com/fsdevblog/ecoledger/internal/transport/api"
	"github.com/fsdevblog/ecoledger/internal/transport/sms"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	codegenNodeID     = 1
	corsMaxAge        = 300
	metricsRoute      = "/metrics"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithField("address", a.Config.RunAddress).Info("starting app")
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	redisClient, redisErr := redisrepo.Connect(notifyCtx, redisrepo.ConnectArgs{
		Address:  a.Config.RedisAddress,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})
	if redisErr != nil {
		return fmt.Errorf("app run: %s", redisErr.Error())
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			a.Logger.WithError(err).Error("close redis client")
		}
	}()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	generator, genErr := codegen.NewSnowflake(codegenNodeID)
	if genErr != nil {
		return fmt.Errorf("app run: %s", genErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		Auth: service.AuthDeps{
			Limiter:        redisrepo.NewOTPLimiter(redisClient, a.Config.OTPDailyLimit),
			Store:          redisrepo.NewOTPStore(redisClient),
			SMS:            a.smsSender(),
			Hasher:         psswd.NewPasswordHash(bcrypt.DefaultCost),
			JWTTokenSecret: []byte(a.Config.JWTUserSecret),
		},
		CodeGenerator: generator,
		BatchWorkers:  a.Config.BatchWorkers,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if a.Config.DeviceAPIKey == "" {
		a.Logger.Warn("device api key is not set, device routes will reject all requests")
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:            a.Logger,
		AuthService:       services.AuthService,
		SettlementService: services.SettlementService,
		LedgerService:     services.LedgerService,
		WithdrawalService: services.WithdrawalService,
		PenaltyService:    services.PenaltyService,
		CodeService:       services.CodeService,
		CatalogService:    services.CatalogService,
		JWTSecretKey:      []byte(a.Config.JWTUserSecret),
		DeviceAPIKey:      a.Config.DeviceAPIKey,
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	metrics.Init()
	router.GET(metricsRoute, gin.WrapH(metrics.Handler()))

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           a.withCORS(router),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// smsSender без адреса шлюза коды только пишутся в лог.
func (a *App) smsSender() service.SMSSender {
	if a.Config.SMSBaseURL == "" {
		a.Logger.Warn("sms gateway is not configured, otp codes will be logged")
		return sms.NewLogSender(a.Logger)
	}
	return sms.New(a.Config.SMSBaseURL, a.Config.SMSToken, a.Config.SMSFrom)
}

func (a *App) withCORS(h http.Handler) http.Handler {
	if len(a.Config.CORSAllowedOrigins) == 0 {
		return h
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   a.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})(h)
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.AccountRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAccountRepository(dbtx)
		},
		repoargs.CategoryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCategoryRepository(dbtx)
		},
		repoargs.CollectionPointRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCollectionPointRepository(dbtx)
		},
		repoargs.ScanCodeRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewScanCodeRepository(dbtx)
		},
		repoargs.PostingRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPostingRepository(dbtx)
		},
		repoargs.WithdrawalRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWithdrawalRepository(dbtx)
		},
		repoargs.ApplicationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewApplicationRepository(dbtx)
		},
		repoargs.ScanLogRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewScanLogRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
