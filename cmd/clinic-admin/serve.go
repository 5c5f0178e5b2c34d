package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinica/patient-admin/internal/api"
	"github.com/clinica/patient-admin/internal/api/cookie"
	"github.com/clinica/patient-admin/internal/core/service"
	"github.com/clinica/patient-admin/internal/infrastructure/http/handlers"
	"github.com/clinica/patient-admin/internal/infrastructure/queue"
	"github.com/clinica/patient-admin/pkg/logger"
)

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the admin panel HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func runServer(ctx context.Context, portOverride string) error {
	cfg, log, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if portOverride != "" {
		cfg.Port = portOverride
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	sessions, closeSessions, err := openSessions(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSessions()

	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		if secret, err = cookie.RandomSecret(); err != nil {
			return err
		}
		log.Warn().Msg("SESSION_SECRET not set; sessions will not survive a restart")
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	audit := queue.NewAuditDispatcher(cfg.AuditWorkers, st.audit, logger.Component("audit"))
	audit.Start(workerCtx)

	creds := service.NewCredentials(st.users, bcrypt.DefaultCost)
	e := api.NewRouter(api.Dependencies{
		Auth:         service.NewAuthService(creds, service.NewSessionManager(sessions), log),
		Provisioning: service.NewProvisioningService(creds, cfg.BootstrapAdminSecret, log),
		Patients: service.NewPatientService(st.patients, audit, service.PatientOptions{
			StrictStatus: cfg.StrictPatientStatus,
		}, log),
		Cookies: cookie.NewCodec(secret, cfg.Session.Secure),
		Readiness: map[string]handlers.Pinger{
			"store":    st.ping,
			"sessions": sessions,
		},
		BootstrapRoute: cfg.BootstrapRoute,
		Log:            log,
	})
	if cfg.BootstrapRoute {
		log.Warn().Msg("GET /bootstrap-admin is enabled; disable BOOTSTRAP_ROUTE_ENABLED after first use")
	}

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("store", cfg.StoreDriver).Str("sessions", cfg.Session.Backend).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	audit.Close()
	log.Info().Msg("server stopped")
	return nil
}
