package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	productspostgres "github.com/selfservice/fastfood-api/internal/domains/products/adapters/persistence/postgres"
	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	"github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

// demoMenu is loaded by "migrate seed". Ids are fixed so the command can be re-run.
var demoMenu = []*domain.Product{
	domain.NewProduct("demo-x-burger", "X-Burger", "Beef patty, cheese and bun", 25.9, domain.CategoryBurger),
	domain.NewProduct("demo-x-salad", "X-Salad", "Beef patty, cheese, lettuce and tomato", 27.5, domain.CategoryBurger),
	domain.NewProduct("demo-fries", "Fries", "Large portion of fries", 12, domain.CategorySide),
	domain.NewProduct("demo-soda", "Soda", "350ml can", 6.5, domain.CategoryDrink),
	domain.NewProduct("demo-sundae", "Sundae", "Vanilla ice cream with chocolate", 9.9, domain.CategoryDessert),
}

func newSeedCmd(open func(context.Context) (*gorm.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Apply the schema and load a demo menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open(cmd.Context())
			if err != nil {
				return err
			}
			inserted, err := seedProducts(cmd.Context(), productspostgres.NewRepository(db), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", inserted)
			return nil
		},
	}
}

// seedProducts inserts the demo menu, skipping products that already exist.
func seedProducts(ctx context.Context, repo ports.Repository, out io.Writer) (int, error) {
	inserted := 0
	for _, product := range demoMenu {
		err := repo.Insert(ctx, product.Clone())
		switch {
		case errors.Is(err, ports.ErrAlreadyExists):
			fmt.Fprintf(out, "skip %s: already present\n", product.ID)
		case err != nil:
			return inserted, fmt.Errorf("insert %s: %w", product.ID, err)
		default:
			inserted++
		}
	}
	return inserted, nil
}
