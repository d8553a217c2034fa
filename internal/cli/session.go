package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const apiKeyEnv = "PYXPAY_API_KEY"

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with an API key or a saved key",
	Long: `Validate an API key against the wallet balance endpoint and keep it as the active session.

The key is read from --key, then from $PYXPAY_API_KEY. Use --saved to log in with a saved key id.`,
	Args: cobra.NoArgs,
	RunE: withApp(runLogin),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the active API key",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		if err := a.Session.Logout(cmd.Context()); err != nil {
			return err
		}
		return printSession(cmd, services.NewSessionInfo(a.Session.Current()))
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		return printSession(cmd, services.NewSessionInfo(a.Session.Current()))
	}),
}

func init() {
	loginCmd.Flags().String("key", "", "API key (defaults to $"+apiKeyEnv+")")
	loginCmd.Flags().String("endpoint", "", "API endpoint (defaults to the configured endpoint)")
	loginCmd.Flags().String("saved", "", "id of a saved key to log in with")
}

func runLogin(cmd *cobra.Command, args []string, a *app.App) error {
	savedID, _ := cmd.Flags().GetString("saved")
	key, _ := cmd.Flags().GetString("key")
	endpoint, _ := cmd.Flags().GetString("endpoint")

	var (
		session *services.Session
		err     error
	)
	if savedID != "" {
		id, parseErr := uuid.Parse(savedID)
		if parseErr != nil {
			return fmt.Errorf("invalid saved key id %q", savedID)
		}
		session, err = a.Session.LoginWithSavedKey(cmd.Context(), id)
	} else {
		if strings.TrimSpace(key) == "" {
			key = os.Getenv(apiKeyEnv)
		}
		if strings.TrimSpace(key) == "" {
			return errors.New("an API key is required (--key or $" + apiKeyEnv + ")")
		}
		session, err = a.Session.Login(cmd.Context(), key, endpoint)
	}
	if err != nil {
		return err
	}

	return printSession(cmd, services.NewSessionInfo(*session))
}

func printSession(cmd *cobra.Command, info dto.SessionInfo) error {
	return newPrinter(cmd).print(info, func(w io.Writer) {
		if !info.IsAuthenticated {
			fmt.Fprintf(w, "Status:\tlogged out\n")
			fmt.Fprintf(w, "Endpoint:\t%s\n", info.Endpoint)
			return
		}
		fmt.Fprintf(w, "Status:\tauthenticated\n")
		fmt.Fprintf(w, "Endpoint:\t%s\n", info.Endpoint)
		fmt.Fprintf(w, "API key:\t%s\n", info.MaskedAPIKey)
		fmt.Fprintf(w, "Since:\t%s\n", info.AuthenticatedAt.Local().Format(time.DateTime))
	})
}
