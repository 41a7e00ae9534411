package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const keyringService = "desktopcli"
const keyringUser = "rpc-token"

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Manage the bearer token clients must present to the JSON-RPC server.`,
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the server bearer token",
}

var authTokenSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store a bearer token in the system keyring",
	Long:  `Stores the given token in the system keyring. With no argument, a random token is generated, stored, and printed once.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			tokenBytes := make([]byte, 24)
			if _, err := rand.Read(tokenBytes); err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}
			token = hex.EncodeToString(tokenBytes)
		}

		if err := keyring.Set(keyringService, keyringUser, token); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(token)
		}
		return nil
	},
}

var authTokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored bearer token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := keyring.Get(keyringService, keyringUser)
		if err != nil {
			return fmt.Errorf("no token stored: %w", err)
		}
		fmt.Println(token)
		return nil
	},
}

var authTokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored bearer token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(keyringService, keyringUser); err != nil {
			return fmt.Errorf("failed to remove token: %w", err)
		}
		return nil
	},
}

// storedAuthToken fetches the keyring token, returning "" when none is stored.
func storedAuthToken() string {
	token, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		return ""
	}
	return token
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authTokenCmd)
	authTokenCmd.AddCommand(authTokenSetCmd)
	authTokenCmd.AddCommand(authTokenShowCmd)
	authTokenCmd.AddCommand(authTokenClearCmd)
}
