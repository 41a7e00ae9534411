package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/desktop-next/desktopcli/daemon"
	"github.com/desktop-next/desktopcli/server"
	"github.com/desktop-next/desktopcli/utils"
)

const defaultServerAddress = "localhost:12100"

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the desktopcli JSON-RPC server.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the desktopcli server",
	Long:  `Starts the JSON-RPC server exposing actions over HTTP and WebSocket.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr := cmd.Flag("listen").Value.String()
		if listenAddr == "" {
			listenAddr = defaultServerAddress
		}

		// GetBool cannot fail for defined flags
		enableCORS, _ := cmd.Flags().GetBool("cors")
		isDaemon, _ := cmd.Flags().GetBool("daemon")
		requireAuth, _ := cmd.Flags().GetBool("auth")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts := server.Options{EnableCORS: enableCORS}
		if requireAuth {
			opts.AuthToken = storedAuthToken()
			if opts.AuthToken == "" {
				return fmt.Errorf("--auth requires a stored token, run 'desktopcli auth token set' first")
			}
		}

		if isDaemon && !daemon.IsChild() {
			if err := checkListenable(listenAddr); err != nil {
				return err
			}

			_, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("Server daemon spawned, attempting to listen on %s\n", listenAddr)
			return nil
		}

		server.Version = GetVersion()
		return server.StartServer(cfg, listenAddr, opts)
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop the daemonized desktopcli server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// GetString cannot fail for defined flags
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = defaultServerAddress
		}

		err := daemon.KillServer(addr, storedAuthToken())
		if err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

// checkListenable verifies the port can be bound before daemonizing, where a
// bind failure would otherwise only surface in the detached child's logs.
func checkListenable(addr string) error {
	normalized, err := utils.NormalizeListenAddr(addr)
	if err != nil {
		return err
	}

	host, portStr, err := net.SplitHostPort(normalized)
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if host == "" {
		host = "0.0.0.0"
	}

	if port != 0 && !utils.IsPortAvailable(host, port) {
		return fmt.Errorf("port %d is already in use on %s", port, host)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)

	// server start flags
	serverStartCmd.Flags().String("listen", "", fmt.Sprintf("Address to listen on (default: %s)", defaultServerAddress))
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")
	serverStartCmd.Flags().Bool("auth", false, "Require the stored bearer token on every request")

	// server kill flags
	serverKillCmd.Flags().String("listen", "", fmt.Sprintf("Address of server to kill (default: %s)", defaultServerAddress))
}
