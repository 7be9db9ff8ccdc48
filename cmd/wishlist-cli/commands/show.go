package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints every stored user with their favorite products.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		config, err := readConfig(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		s, closeStore, err := openStore(config)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer closeStore()

		users, err := s.Users(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("no users have been scraped yet")
			return nil
		}

		for _, user := range users {
			fmt.Printf(
				"#%d %s %s <%s> %s\n",
				user.ID,
				user.Firstname,
				user.Lastname,
				user.UserEmail,
				user.City.String,
			)

			products, err := s.Products(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}

			t := newTable()
			t.AppendHeader(table.Row{"ID", "Product", "Price", "Rating", "Reviews", "Stored reviews", "In stock"})
			for _, p := range products {
				reviews, err := s.Reviews(ctx, p.ID)
				if err != nil {
					return fmt.Errorf("list reviews: %w", err)
				}
				t.AppendRow(table.Row{
					p.ID,
					p.ProductName,
					p.RetailPrice.String,
					p.RatingValue.String,
					p.TotalReviews.Int64,
					len(reviews),
					p.TotalInStock.Int64,
				})
			}
			t.Render()
		}
		return nil
	},
}
