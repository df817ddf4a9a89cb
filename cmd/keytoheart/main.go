package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ujwegh/keytoheart/internal/app/config"
	"github.com/ujwegh/keytoheart/internal/app/handlers"
	"github.com/ujwegh/keytoheart/internal/app/lock"
	"github.com/ujwegh/keytoheart/internal/app/logger"
	middlware "github.com/ujwegh/keytoheart/internal/app/middleware"
	"github.com/ujwegh/keytoheart/internal/app/repository"
	"github.com/ujwegh/keytoheart/internal/app/router"
	"github.com/ujwegh/keytoheart/internal/app/service"
	"github.com/ujwegh/keytoheart/internal/app/service/clients"
	"go.uber.org/zap"
)

// @title           Swagger Docs for KeyToHeart API
// @version         1.0
// @description     This is a `keytoheart` bonus service. Customers sign in with their phone, collect cashback on delivered orders and spend it at checkout; administrators adjust and audit bonus accounts.
// @termsOfService  http://swagger.io/terms/

// @contact.name   Nikita Aleksandrov
// @contact.email  nik29200018@gmail.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  ApiKeyAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Server run context
	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	c := config.ParseFlags()
	logger.InitLogger(c.LogLevel)
	defer logger.Log.Sync()

	//setup repositories
	s := repository.NewDBStorage(c)
	defer s.Close()
	ar := repository.NewAccountRepository(s.DBConn)
	lr := repository.NewLedgerRepository(s.DBConn)
	or := repository.NewOrderRepository(s.DBConn)

	//setup services
	locks := lock.NewKeyLock()
	ts := service.NewTokenService(c)
	ls := service.NewLedgerService(ar, lr, locks)
	ors := service.NewOrderService(or, ar, ls, locks)
	cc := clients.NewSMSRuClient(c)
	as := service.NewAuthService(c, cc, ts)

	// setup handlers
	ah := handlers.NewAuthHandler(c.ContextTimeoutSec, as)
	bh := handlers.NewBonusHandler(c.ContextTimeoutSec, ls)
	adh := handlers.NewAdminHandler(c.ContextTimeoutSec, ls)
	oh := handlers.NewOrdersHandler(c.ContextTimeoutSec, ors)

	am := middlware.NewAuthMiddleware(ts)

	r := router.NewAppRouter(ah, bh, adh, oh, am)

	// The HTTP Server
	server := &http.Server{Addr: c.ServerAddr, Handler: r}

	// Listen for syscall signals for process to interrupt/quit
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		// Shutdown signal with grace period of 30 seconds
		shutdownCtx, cancelFunc := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancelFunc()
		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				logger.Log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		// Trigger graceful shutdown
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			logger.Log.Fatal("shutdown failed", zap.Error(err))
		}
		serverStopCtx()
	}()

	// Run the server
	logger.Log.Info("starting server", zap.String("address", c.ServerAddr))
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal("server failed", zap.Error(err))
	}
	// Wait for server context to be stopped
	<-serverCtx.Done()
}
