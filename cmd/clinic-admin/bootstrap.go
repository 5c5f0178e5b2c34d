package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/service"
)

func bootstrapAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Create the administrator account (run once per deployment)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runBootstrap(ctx context.Context, out io.Writer) error {
	cfg, log, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	prov := service.NewProvisioningService(
		service.NewCredentials(st.users, bcrypt.DefaultCost),
		cfg.BootstrapAdminSecret,
		log,
	)
	user, err := prov.BootstrapAdmin(ctx)
	if errors.Is(err, domain.ErrDuplicateLogin) {
		return fmt.Errorf("administrator %q already exists", service.AdminLogin)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "administrator created: login=%s\n", user.Login)
	return nil
}
