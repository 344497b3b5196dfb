package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apenask/csnutri-server/internal/domain/customer"
)

func createTestCustomer(t *testing.T, repo customer.Repository, name, phone, email string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, phone, email)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestCustomerSearchMatchesNamePhoneAndEmail(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewCustomerRepository(pool)

	byName := createTestCustomer(t, repo, "Marcela Pesquisa", "83911110001", "")
	byPhone := createTestCustomer(t, repo, "Outro Cliente", "83955550002", "")
	byEmail := createTestCustomer(t, repo, "Mais Um Cliente", "83911110003", "marcela.pesquisa@example.com")

	found, err := repo.Search(ctx, "marcela", 10, 0)
	require.NoError(t, err)

	ids := make([]string, 0, len(found))
	for _, c := range found {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, byName.ID)
	assert.Contains(t, ids, byEmail.ID)
	assert.NotContains(t, ids, byPhone.ID)

	found, err = repo.Search(ctx, "5555000", 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, byPhone.ID, found[0].ID)

	count, err := repo.CountBySearch(ctx, "marcela")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCustomerSearchWithoutMatches(t *testing.T) {
	pool := testPool(t)
	repo := NewCustomerRepository(pool)

	found, err := repo.Search(context.Background(), "termo-que-nao-existe", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}
