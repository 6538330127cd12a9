// Package cmd wires the hope CLI: donor-facing commands (donate, volunteer,
// subscribe, projects) and the authenticated back office (admin, auth).
package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/config"
	"github.com/dami/hope/internal/output"
	"github.com/dami/hope/internal/resource"
	"github.com/dami/hope/internal/session"
)

var version string

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "hope",
	Short: "Terminal client for the Hope donation platform",
	Long: `hope - donate to projects, apply to volunteer, and subscribe to the
newsletter from the terminal. Administrators manage projects, donations,
volunteers and subscriptions through the admin commands after logging in.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			output.Error("session expired, run `hope auth login`")
		} else {
			output.Error("%v", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "donor", Title: "Donor Commands:"},
		&cobra.Group{ID: "admin", Title: "Admin Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

// newClient builds the API client from config and the on-disk session.
func newClient() *api.Client {
	httpClient := &http.Client{Timeout: config.RequestTimeout()}
	return api.New(config.APIURL(), &session.Store{}, httpClient)
}

// newStore builds the cached resource layer most commands read through.
func newStore() *resource.Store {
	return resource.NewStore(newClient())
}

// addPagingFlags registers the shared list pagination flags.
func addPagingFlags(fs *pflag.FlagSet) {
	fs.Int("page", 1, "page number")
	fs.Int("page-size", 10, "items per page")
	fs.String("search", "", "search filter")
	fs.Bool("json", false, "output raw JSON")
}

// pagingFrom reads the shared pagination flags back out.
func pagingFrom(fs *pflag.FlagSet) (page, pageSize int, search string, asJSON bool) {
	page, _ = fs.GetInt("page")
	pageSize, _ = fs.GetInt("page-size")
	search, _ = fs.GetString("search")
	asJSON, _ = fs.GetBool("json")
	return
}

// parseID parses a positional numeric id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// requireLogin fails early with a uniform message when no session exists.
func requireLogin() error {
	sess := &session.Store{}
	if !sess.IsAuthenticated() {
		return fmt.Errorf("not logged in, run `hope auth login`")
	}
	return nil
}
