package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mall-client/internal/application/usecase"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/memory"
)

func TestCatalog_Paginacion(t *testing.T) {
	db := memory.NewDB()
	products := memory.NewProductRepository(db)
	for i := 0; i < 12; i++ {
		products.Put(entity.Product{Name: "Item", Status: entity.ProductOnSale})
	}
	uc := usecase.NewCatalogUseCase(products, memory.NewCategoryRepository(db))

	page, err := uc.Products("", 0, 2, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 12, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.List, 5)

	page, err = uc.Products("", 0, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, usecase.DefaultPageSize, page.Size)
}

func TestCatalog_CategoriasOrdenadas(t *testing.T) {
	db := memory.NewDB()
	cats := memory.NewCategoryRepository(db)
	cats.Put(entity.Category{Name: "B", SortOrder: 2})
	cats.Put(entity.Category{Name: "A", SortOrder: 1})
	uc := usecase.NewCatalogUseCase(memory.NewProductRepository(db), cats)

	list, err := uc.Categories()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
}
