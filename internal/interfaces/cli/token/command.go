package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"zelo/internal/infrastructure/auth"
	"zelo/internal/infrastructure/config"
	"zelo/internal/shared/constants"
)

var (
	env   string
	email string
	role  string
)

// NewCommand issues back office bearer tokens from the configured secret.
// There is no self-service signup; operators mint tokens for staff out of
// band and rotate the secret to revoke them.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a back office access token",
		Long:  `Generate a signed JWT for the back office API using the configured secret.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVar(&email, "email", "", "Email identifying the token holder (required)")
	cmd.Flags().StringVar(&role, "role", constants.RoleManager, "Role to embed (admin or gestor)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if role != constants.RoleAdmin && role != constants.RoleManager {
		return fmt.Errorf("unknown role %q", role)
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	signed, err := jwtSvc.Generate(email, role)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(signed)
	return nil
}
