package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/memory"
)

func TestUserRepo_UsernameUnico(t *testing.T) {
	repo := memory.NewUserRepository(memory.NewDB())

	a := &entity.Account{Username: "alice", Role: entity.RoleUser, Status: 1}
	require.NoError(t, repo.Create(a))
	assert.NotZero(t, a.ID)

	err := repo.Create(&entity.Account{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	got, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)

	missing, err := repo.FindByUsername("nadie")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_ListPagina(t *testing.T) {
	repo := memory.NewUserRepository(memory.NewDB())
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(&entity.Account{Username: name}))
	}

	page, total, err := repo.List(2, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Username)

	page, _, err = repo.List(2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestProductRepo_FiltraPorNombreCategoriaYEstado(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewDB())
	repo.Put(entity.Product{Name: "Red Apple", CategoryID: 1, Status: entity.ProductOnSale})
	repo.Put(entity.Product{Name: "Green Apple", CategoryID: 2, Status: entity.ProductOnSale})
	repo.Put(entity.Product{Name: "Old Apple", CategoryID: 1, Status: entity.ProductOffSale})

	list, total, err := repo.List("apple", 1, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Red Apple", list[0].Name)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartRepo_AgregarAcumulaYResuelvePrecio(t *testing.T) {
	db := memory.NewDB()
	products := memory.NewProductRepository(db)
	p := products.Put(entity.Product{Name: "Mug", Price: decimal.RequireFromString("12.5"), Stock: 5, Status: entity.ProductOnSale})
	repo := memory.NewCartRepository(db)

	_, err := repo.Add(1, p.ID, 2)
	require.NoError(t, err)
	it, err := repo.Add(1, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Quantity)
	assert.True(t, it.Checked)
	assert.Equal(t, "Mug", it.ProductName)
	assert.True(t, it.ProductPrice.Equal(decimal.RequireFromString("12.5")))

	_, err = repo.Add(1, p.ID, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	items, err := repo.ListByUser(2)
	require.NoError(t, err)
	assert.Empty(t, items, "el carrito es por usuario")
}

func TestCartRepo_MarcarYBorrar(t *testing.T) {
	db := memory.NewDB()
	products := memory.NewProductRepository(db)
	p1 := products.Put(entity.Product{Name: "A", Stock: 9, Status: entity.ProductOnSale})
	p2 := products.Put(entity.Product{Name: "B", Stock: 9, Status: entity.ProductOnSale})
	repo := memory.NewCartRepository(db)
	a, _ := repo.Add(1, p1.ID, 1)
	_, _ = repo.Add(1, p2.ID, 1)

	require.NoError(t, repo.SetAllChecked(1, false))
	require.NoError(t, repo.SetChecked(1, a.ID, true))
	items, _ := repo.ListByUser(1)
	assert.True(t, items[0].Checked)
	assert.False(t, items[1].Checked)

	require.NoError(t, repo.Delete(1, a.ID))
	assert.ErrorIs(t, repo.Delete(1, a.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.SetChecked(2, items[1].ID, true), domain.ErrNotFound)
}
