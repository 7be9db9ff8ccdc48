package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var forgetCmd = &cobra.Command{
	Use:   "forget <user-id>",
	Short: "Deletes a stored user together with their products and reviews.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("user id must be an integer: %w", err)
		}

		config, err := readConfig(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		s, closeStore, err := openStore(config)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer closeStore()

		deleted, err := s.DeletePersonalInfo(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if !deleted {
			fmt.Printf("there is no user with id %d\n", id)
			return nil
		}
		fmt.Printf("deleted user %d\n", id)
		return nil
	},
}
