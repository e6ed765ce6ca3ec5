package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/i18n"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in locally so results can be exported",
	RunE: func(cmd *cobra.Command, args []string) error {
		return signIn(cmd, false)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a local account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return signIn(cmd, true)
	},
}

func signIn(cmd *cobra.Command, register bool) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	var u *account.User
	if register {
		name, _ := cmd.Flags().GetString("name")
		u, err = d.accounts.Register(cmd.Context(), email, password, name)
	} else {
		u, err = d.accounts.Login(cmd.Context(), email, password)
	}
	if errors.Is(err, account.ErrInvalidCredentials) {
		return errors.New(d.t(i18n.AccountInvalid))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), d.t(i18n.AccountWelcome)+"\n", u.Name())
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.accounts.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.t(i18n.AccountSignedOut))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		u, err := d.accounts.Current(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if u == nil {
			fmt.Fprintln(out, d.t(i18n.AccountSignedOut))
			return nil
		}
		fmt.Fprintf(out, d.t(i18n.AccountSignedInAs)+"\n", u.Name())
		if u.DisplayName != "" {
			fmt.Fprintln(out, u.Email)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().String("email", "", "Email address")
		c.Flags().String("password", "", "Password (not stored)")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	registerCmd.Flags().String("name", "", "Display name")
}
