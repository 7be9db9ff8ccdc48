package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initDbCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Creates the personal_info, favorite_products and reviews tables if they don't exist.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := readConfig(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		s, closeStore, err := openStore(config)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer closeStore()

		err = s.CreateSchema(cmd.Context())
		if err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		fmt.Println("schema created in", config.Database.File)
		return nil
	},
}
