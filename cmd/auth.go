package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/output"
	"github.com/dami/hope/internal/session"
)

var authCmd = &cobra.Command{
	Use:     "auth",
	Short:   "Manage back-office authentication",
	GroupID: "system",
}

var authLoginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in to the back office",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var username string
		if len(args) == 1 {
			username = args[0]
		} else {
			fmt.Print("Username: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}
		if username == "" {
			return fmt.Errorf("username required")
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		if password == "" {
			return fmt.Errorf("password required")
		}

		info, err := newClient().Login(username, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		name := username
		if info.User != nil && info.User.Username != "" {
			name = info.User.Username
		}
		output.Success("Logged in as %s", name)
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register <username> <email>",
	Short: "Create a back-office account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		info, err := newClient().Register(&api.RegisterRequest{
			Username: args[0],
			Email:    args[1],
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}

		name := args[0]
		if info.User != nil && info.User.Username != "" {
			name = info.User.Username
		}
		output.Success("Registered and logged in as %s", name)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := &session.Store{}
		if err := sess.Clear(); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := &session.Store{}
		info, err := sess.Load()
		if err != nil {
			return err
		}
		if !sess.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}
		if info != nil && info.User != nil {
			fmt.Printf("Logged in as %s", info.User.Username)
			if info.User.Email != "" {
				fmt.Printf(" <%s>", info.User.Email)
			}
			fmt.Println()
			return nil
		}
		// Token came from the environment rather than the stored blob.
		fmt.Println("Authenticated (token from environment).")
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Fetch the authenticated profile from the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := newClient().Me()
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", user.Username, user.Email)
		return nil
	},
}

// readPassword prompts without echo when stdin is a terminal, falling back to
// a plain line read for piped input.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
