package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vellum-app/vellum/internal/interfaces/cli/migrate"
	"github.com/vellum-app/vellum/internal/interfaces/cli/server"
)

func main() {
	root := &cobra.Command{
		Use:   "vellum",
		Short: "Vellum workshop backend",
		Long:  `Vellum is the backend for user-generated alias and snippet collections.`,
	}

	root.AddCommand(server.NewCommand())
	root.AddCommand(migrate.NewCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
