package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	"github.com/selfservice/fastfood-api/internal/domains/clients/ports"
)

func TestRepository_CpfUniqueness(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, domain.NewClient("c1", "John", "123")))
	assert.ErrorIs(t, repo.Insert(ctx, domain.NewClient("c2", "Jane", "123")), ports.ErrAlreadyExists)

	exists, err := repo.CpfExists(ctx, "123")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Update(ctx, domain.NewClient("c1", "John", "456")))
	exists, err = repo.CpfExists(ctx, "123")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Update(ctx, domain.NewClient("c9", "X", "1")), ports.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, "c1"))
	_, err = repo.FindByID(ctx, "c1")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
