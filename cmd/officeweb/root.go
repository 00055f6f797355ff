package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "officeweb",
	Short: "Multilingual website and admin console for an administrative services office",
	Long: `officeweb serves the office's public site (news, services, inquiry board)
in Korean, English and Chinese, plus an admin console for managing content.

All content lives in the backend API named by BACKEND_URL. Configuration is
read from the environment and, outside production, from a .env file.`,
	SilenceUsage: true,
}
