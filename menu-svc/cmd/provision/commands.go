package main

import (
	"fmt"
	"os"

	"qrdine/config"
	"qrdine/menu-svc/internal/domain"
	"qrdine/menu-svc/internal/service"
	"qrdine/menu-svc/internal/storage"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	seedFile  string
	hotelSlug string
	tableName string
)

var rootCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision hotels, menus and tables",
	Long: `Provision hotels, menus and tables directly in the platform database.

Connection settings come from the same environment (or .env file) as the
services. Re-running a command with the same input changes nothing.`,
	SilenceUsage: true,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create missing tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeDB := openRepository()
		defer closeDB()
		if err := repo.EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert hotels from a YAML seed file",
	Long: `Upsert hotels, their admin PIN, categories, menu items and tables.

Examples:
  provision seed --file hotels.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := readSeedFile(seedFile)
		if err != nil {
			return err
		}

		repo, closeDB := openRepository()
		defer closeDB()
		if err := repo.EnsureSchema(cmd.Context()); err != nil {
			return err
		}

		hotels, err := service.NewProvisionService(repo, repo, service.BcryptHasher{}).Seed(cmd.Context(), seed)
		if err != nil {
			return err
		}
		for _, hotel := range hotels {
			fmt.Fprintf(cmd.OutOrStdout(), "provisioned %s (%s)\n", hotel.Slug, hotel.ID)
		}
		return nil
	},
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Add a table to an existing hotel",
	Long: `Add a table to an existing hotel and print its QR slug.

Examples:
  provision table --hotel aurora-grand --name "Table 7"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeDB := openRepository()
		defer closeDB()

		table, err := service.NewProvisionService(repo, repo, service.BcryptHasher{}).AddTable(cmd.Context(), hotelSlug, tableName)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", table.Name, table.QRSlug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd, seedCmd, tableCmd)

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "hotels.yaml", "YAML seed file")

	tableCmd.Flags().StringVar(&hotelSlug, "hotel", "", "Hotel slug")
	tableCmd.Flags().StringVar(&tableName, "name", "", "Table display name")
	_ = tableCmd.MarkFlagRequired("hotel")
	_ = tableCmd.MarkFlagRequired("name")

}

func readSeedFile(path string) (domain.SeedFile, error) {
	var seed domain.SeedFile
	raw, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("read seed file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return seed, fmt.Errorf("parse seed file: %w", err)
	}
	if len(seed.Hotels) == 0 {
		return seed, fmt.Errorf("seed file %s lists no hotels", path)
	}
	return seed, nil
}

func openRepository() (*storage.PostgresRepository, func()) {
	cfg := config.MustLoad(0)
	logger := config.NewLogger(cfg, "provision")
	db := config.MustInitPostgres(cfg.Database, logger)
	return storage.NewPostgresRepository(db), func() {
		db.Close()
		logger.Sync()
	}
}
