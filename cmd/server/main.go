package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
	"github.com/ctrlz-wear/ctrlz-api/app/routes"
	"github.com/ctrlz-wear/ctrlz-api/config"
	"github.com/ctrlz-wear/ctrlz-api/database/seeders"
	"github.com/ctrlz-wear/ctrlz-api/internal/server"
	"github.com/ctrlz-wear/ctrlz-api/pkg/database"
	"github.com/ctrlz-wear/ctrlz-api/pkg/router"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ctrlz-api",
	Short: "CTRL-Z storefront catalog API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation serves, matching container entrypoints.
		return server.Start()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// seed requires a reachable store: unlike serve, a connection failure here is
// an error rather than a degraded mode.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the demo catalog into MongoDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if err := database.Connect(); err != nil {
			return err
		}
		defer database.Close()

		store := repositories.NewMongoProductStore(database.DB)
		return seeders.RunAll(cmd.Context(), store)
	},
}

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.RegisterAPI(r)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(routeListCmd)
}
