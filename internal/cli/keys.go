package cli

import (
	"fmt"
	"io"
	"time"

	"pyxpay-admin/internal/app"
	"pyxpay-admin/internal/dto"
	"pyxpay-admin/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage saved API keys",
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved keys",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		keys, err := a.SavedKeys.List()
		if err != nil {
			return err
		}
		return printSavedKeys(cmd, keys)
	}),
}

var keysAddCmd = &cobra.Command{
	Use:   "add <label> <api-key>",
	Short: "Save an API key under a label",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		endpoint, _ := cmd.Flags().GetString("endpoint")
		key, err := a.SavedKeys.Add(args[0], args[1], endpoint)
		if err != nil {
			return err
		}
		return printSavedKeys(cmd, []dto.SavedKeyResponse{*key})
	}),
}

var keysUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the label, key or endpoint of a saved key",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runKeysUpdate),
}

var keysRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a saved key",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		id, err := parseKeyID(args[0])
		if err != nil {
			return err
		}
		if err := a.SavedKeys.Remove(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
		return nil
	}),
}

var keysUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Log in with a saved key",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app.App) error {
		id, err := parseKeyID(args[0])
		if err != nil {
			return err
		}
		session, err := a.Session.LoginWithSavedKey(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printSession(cmd, services.NewSessionInfo(*session))
	}),
}

func init() {
	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysAddCmd)
	keysCmd.AddCommand(keysUpdateCmd)
	keysCmd.AddCommand(keysRemoveCmd)
	keysCmd.AddCommand(keysUseCmd)

	keysAddCmd.Flags().String("endpoint", "", "API endpoint for this key")

	keysUpdateCmd.Flags().String("label", "", "new label")
	keysUpdateCmd.Flags().String("key", "", "new API key")
	keysUpdateCmd.Flags().String("endpoint", "", "new endpoint")
}

func runKeysUpdate(cmd *cobra.Command, args []string, a *app.App) error {
	id, err := parseKeyID(args[0])
	if err != nil {
		return err
	}

	var req dto.SavedKeyUpdateRequest
	if cmd.Flags().Changed("label") {
		label, _ := cmd.Flags().GetString("label")
		req.Label = &label
	}
	if cmd.Flags().Changed("key") {
		key, _ := cmd.Flags().GetString("key")
		req.APIKey = &key
	}
	if cmd.Flags().Changed("endpoint") {
		endpoint, _ := cmd.Flags().GetString("endpoint")
		req.Endpoint = &endpoint
	}

	key, err := a.SavedKeys.Update(id, req)
	if err != nil {
		return err
	}
	return printSavedKeys(cmd, []dto.SavedKeyResponse{*key})
}

func parseKeyID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid saved key id %q", value)
	}
	return id, nil
}

func printSavedKeys(cmd *cobra.Command, keys []dto.SavedKeyResponse) error {
	return newPrinter(cmd).print(keys, func(w io.Writer) {
		if len(keys) == 0 {
			fmt.Fprintln(w, "No saved keys")
			return
		}
		fmt.Fprintln(w, "ID\tLABEL\tKEY\tENDPOINT\tCREATED")
		for _, key := range keys {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				key.ID, key.Label, key.MaskedAPIKey, key.Endpoint, key.CreatedAt.Local().Format(time.DateTime))
		}
	})
}
