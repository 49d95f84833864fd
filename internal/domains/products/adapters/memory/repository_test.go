package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	"github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

func TestRepository_CRUDAndCategory(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	fries := domain.NewProduct("p1", "Fries", "Small", 5, domain.CategorySide)
	cola := domain.NewProduct("p2", "Cola", "Can", 4, domain.CategoryDrink)
	onion := domain.NewProduct("p3", "Onion rings", "Crispy", 6, domain.CategorySide)

	for _, p := range []*domain.Product{fries, cola, onion} {
		require.NoError(t, repo.Insert(ctx, p))
	}
	assert.ErrorIs(t, repo.Insert(ctx, fries), ports.ErrAlreadyExists)

	sides, err := repo.ListByCategory(ctx, domain.CategorySide)
	require.NoError(t, err)
	require.Len(t, sides, 2)
	assert.Equal(t, "Fries", sides[0].Name)
	assert.Equal(t, "Onion rings", sides[1].Name)

	fries.Reprice(6.5)
	require.NoError(t, repo.Update(ctx, fries))
	found, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 6.5, found.Price)

	require.NoError(t, repo.Delete(ctx, "p2"))
	assert.ErrorIs(t, repo.Delete(ctx, "p2"), ports.ErrNotFound)
	_, err = repo.FindByID(ctx, "p2")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
