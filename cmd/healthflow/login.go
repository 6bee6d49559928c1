// ABOUTME: CLI commands for signing in, signing up, and signing out.
// ABOUTME: Auth failures surface as human-readable messages; retry is manual.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/auth"
)

var signupName string

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in to your account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireServer(); err != nil {
			return err
		}

		sess, err := authClient.SignInWithPassword(cmd.Context(), args[0], args[1])
		if err != nil {
			return friendlyAuthError(err)
		}
		<-authClient.Events()

		if err := auth.SaveSession(sess); err != nil {
			logger.Warn("could not save session", "err", err)
		}
		if err := reconciler.Apply(cmd.Context(), auth.Event{Kind: auth.EventSignedIn, Session: sess}); err != nil {
			logger.Error("session load failed", "err", err)
		}

		name := appState.Get().User.Name
		if name == "" {
			name = sess.Email
		}
		color.Green("✓ Signed in as %s", name)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <email> <password>",
	Short: "Create a new account",
	Long: `Create a new account. The display name is captured as auth metadata
and becomes your profile name.

Example:
  healthflow signup you@example.com secret123 --name "Ana"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireServer(); err != nil {
			return err
		}

		sess, err := authClient.SignUp(cmd.Context(), args[0], args[1], signupName)
		if err != nil {
			return friendlyAuthError(err)
		}
		<-authClient.Events()

		if err := auth.SaveSession(sess); err != nil {
			logger.Warn("could not save session", "err", err)
		}
		if err := reconciler.Apply(cmd.Context(), auth.Event{Kind: auth.EventSignedIn, Session: sess}); err != nil {
			color.Yellow("⚠ Account created but the profile could not be registered yet: %v", err)
			color.Yellow("  It will be saved on your next change.")
			return nil
		}

		color.Green("✓ Account created")
		fmt.Println("  Check your email to confirm it if required.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and reset local state",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = authClient.SignOut(cmd.Context())
		if err := auth.ClearSession(); err != nil {
			logger.Warn("could not clear saved session", "err", err)
		}
		if err := reconciler.Apply(cmd.Context(), auth.Event{Kind: auth.EventSignedOut}); err != nil {
			logger.Error("sign-out reset failed", "err", err)
		}

		color.Green("✓ Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := reconciler.Session()
		if sess == nil {
			fmt.Println("Not signed in.")
			return nil
		}

		st := appState.Get()
		name := st.User.Name
		if name == "" {
			name = "(no display name)"
		}
		fmt.Printf("%s\n", name)
		fmt.Printf("  email:  %s\n", sess.Email)
		fmt.Printf("  user:   %s\n", sess.UserID)
		fmt.Printf("  streak: %d days\n", st.Streak)
		return nil
	},
}

// friendlyAuthError keeps the known auth failures as-is (they are
// already human-readable) and wraps anything else.
func friendlyAuthError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrRateLimited),
		errors.Is(err, auth.ErrAlreadyRegistered),
		errors.Is(err, auth.ErrWeakPassword):
		return err
	default:
		return fmt.Errorf("could not complete the request: %w", err)
	}
}

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "display name for the new account")
	_ = signupCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
