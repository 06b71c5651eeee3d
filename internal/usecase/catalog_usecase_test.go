package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogUCForTest(productRepo *fakeProductRepo, categoryRepo *fakeCategoryRepo) (*CatalogUseCase, *fakeCacheRepo, *fakeImagesInfra) {
	cacheRepo := newFakeCacheRepo()
	imagesInfra := &fakeImagesInfra{}
	pool := &fakeTxPool{}

	uc := NewCatalogUC(productRepo, categoryRepo, cacheRepo, imagesInfra, pool, nopLogger{})
	return uc, cacheRepo, imagesInfra
}

func seedCategory(t *testing.T, repo *fakeCategoryRepo, name string, slug string) *domain.Category {
	t.Helper()

	category, err := repo.Create(context.Background(), domain.NewCategory(name, slug, nil))
	require.NoError(t, err)
	return category
}

func TestCreateCategory(t *testing.T) {
	uc, _, _ := newCatalogUCForTest(newFakeProductRepo(), &fakeCategoryRepo{})

	desc := "running and casual shoes"
	category, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{
		Name:        "Shoes",
		Slug:        "mens-shoes",
		Description: &desc,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Shoes", category.Name)
	assert.Equal(t, "mens-shoes", category.Slug)
	require.NotNil(t, category.Description)
	assert.Equal(t, desc, *category.Description)
}

func TestCreateCategoryValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      *CreateCategoryReq
		expected error
	}{
		{"empty name", &CreateCategoryReq{Name: "  ", Slug: "shoes"}, e.ErrCategoryNameRequired},
		{"empty slug", &CreateCategoryReq{Name: "Shoes", Slug: ""}, e.ErrInvalidSlug},
		{"uppercase slug", &CreateCategoryReq{Name: "Shoes", Slug: "Shoes"}, e.ErrInvalidSlug},
		{"slug with space", &CreateCategoryReq{Name: "Shoes", Slug: "mens shoes"}, e.ErrInvalidSlug},
		{"leading hyphen", &CreateCategoryReq{Name: "Shoes", Slug: "-shoes"}, e.ErrInvalidSlug},
		{"trailing hyphen", &CreateCategoryReq{Name: "Shoes", Slug: "shoes-"}, e.ErrInvalidSlug},
		{"double hyphen", &CreateCategoryReq{Name: "Shoes", Slug: "mens--shoes"}, e.ErrInvalidSlug},
		{"non-ascii slug", &CreateCategoryReq{Name: "Shoes", Slug: "обувь"}, e.ErrInvalidSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newCatalogUCForTest(newFakeProductRepo(), &fakeCategoryRepo{})

			category, err := uc.CreateCategory(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.expected)
			assert.Nil(t, category)
		})
	}
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	uc, _, _ := newCatalogUCForTest(newFakeProductRepo(), categoryRepo)
	seedCategory(t, categoryRepo, "Shoes", "shoes")

	_, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{Name: "More Shoes", Slug: "shoes"})
	require.ErrorIs(t, err, e.ErrSlugTaken)
}

func TestListProducts(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	shoes := seedCategory(t, categoryRepo, "Shoes", "shoes")
	hats := seedCategory(t, categoryRepo, "Hats", "hats")

	productRepo := newFakeProductRepo(
		&domain.Product{ID: "p1", Name: "Sneakers", Price: decimal.RequireFromString("59.99"), CategoryID: shoes.ID, IsActive: true},
		&domain.Product{ID: "p2", Name: "Boots", Price: decimal.RequireFromString("89.99"), CategoryID: shoes.ID, IsActive: false},
		&domain.Product{ID: "p3", Name: "Cap", Price: decimal.RequireFromString("14.99"), CategoryID: hats.ID, IsActive: true},
	)
	uc, _, _ := newCatalogUCForTest(productRepo, categoryRepo)

	t.Run("whole catalog", func(t *testing.T) {
		products, err := uc.ListProducts(context.Background(), &ListProductsReq{})
		require.NoError(t, err)
		require.Len(t, products, 2) // архивный p2 скрыт
	})

	t.Run("by category slug", func(t *testing.T) {
		products, err := uc.ListProducts(context.Background(), &ListProductsReq{CategorySlug: "shoes"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Sneakers", products[0].Name)
	})

	t.Run("unknown slug is empty, not an error", func(t *testing.T) {
		products, err := uc.ListProducts(context.Background(), &ListProductsReq{CategorySlug: "gloves"})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestGetProductCacheMiss(t *testing.T) {
	productRepo := newFakeProductRepo(activeProduct("p1", "59.99", 5))
	uc, cacheRepo, _ := newCatalogUCForTest(productRepo, &fakeCategoryRepo{})

	product, err := uc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)

	// Фоновое наполнение кэша
	require.Eventually(t, func() bool { return cacheRepo.setCount() == 1 },
		time.Second, 10*time.Millisecond)

	cached, err := cacheRepo.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "59.99", cached.Price.StringFixed(2))
}

func TestGetProductCacheHit(t *testing.T) {
	// В репозитории товара нет: ответ может прийти только из кэша
	uc, cacheRepo, _ := newCatalogUCForTest(newFakeProductRepo(), &fakeCategoryRepo{})
	require.NoError(t, cacheRepo.SetProduct(context.Background(), activeProduct("p1", "59.99", 5)))

	product, err := uc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
}

func TestGetProductCacheErrorFallsThrough(t *testing.T) {
	productRepo := newFakeProductRepo(activeProduct("p1", "59.99", 5))
	uc, cacheRepo, _ := newCatalogUCForTest(productRepo, &fakeCategoryRepo{})
	cacheRepo.getErr = e.ErrInternalServerError

	product, err := uc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
}

func TestGetProductNotFound(t *testing.T) {
	uc, _, _ := newCatalogUCForTest(newFakeProductRepo(), &fakeCategoryRepo{})

	_, err := uc.GetProduct(context.Background(), "missing")
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateProduct(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	category := seedCategory(t, categoryRepo, "Shoes", "shoes")
	productRepo := newFakeProductRepo()
	uc, _, imagesInfra := newCatalogUCForTest(productRepo, categoryRepo)

	product, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:       "Sneakers",
		Price:      decimal.RequireFromString("59.99"),
		Quantity:   5,
		CategoryID: category.ID,
		Image:      NewProductImage([]byte{0xFF, 0xD8}, "image/jpeg", 2, "sneakers.jpg"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.True(t, product.IsActive)
	require.NotNil(t, product.ImageURL)
	assert.Contains(t, *product.ImageURL, "Sneakers")

	require.Len(t, imagesInfra.uploaded, 1)
	assert.Empty(t, imagesInfra.cleaned)
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      *CreateProductReq
		expected error
	}{
		{"empty name", &CreateProductReq{Name: " ", Price: decimal.RequireFromString("1.00"), Quantity: 1}, e.ErrProductNameRequired},
		{"zero price", &CreateProductReq{Name: "Sneakers", Price: decimal.Zero, Quantity: 1}, e.ErrInvalidPrice},
		{"negative price", &CreateProductReq{Name: "Sneakers", Price: decimal.RequireFromString("-1.00"), Quantity: 1}, e.ErrInvalidPrice},
		{"negative quantity", &CreateProductReq{Name: "Sneakers", Price: decimal.RequireFromString("1.00"), Quantity: -1}, e.ErrQuantityMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, imagesInfra := newCatalogUCForTest(newFakeProductRepo(), &fakeCategoryRepo{})

			product, err := uc.CreateProduct(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.expected)
			assert.Nil(t, product)
			assert.Empty(t, imagesInfra.uploaded)
		})
	}
}

func TestCreateProductUnknownCategoryCleansUpImage(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc, _, imagesInfra := newCatalogUCForTest(productRepo, &fakeCategoryRepo{})

	product, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Name:       "Sneakers",
		Price:      decimal.RequireFromString("59.99"),
		Quantity:   5,
		CategoryID: "missing",
		Image:      NewProductImage([]byte{0xFF, 0xD8}, "image/jpeg", 2, "sneakers.jpg"),
	})
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
	assert.Nil(t, product)

	// Осиротевшее изображение удалено после отката транзакции
	require.Len(t, imagesInfra.uploaded, 1)
	assert.Equal(t, imagesInfra.uploaded, imagesInfra.cleaned)
	assert.Empty(t, productRepo.products)
}

func TestUpdateProductPartial(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	category := seedCategory(t, categoryRepo, "Shoes", "shoes")

	desc := "classic model"
	productRepo := newFakeProductRepo(&domain.Product{
		ID:          "p1",
		Name:        "Sneakers",
		Description: &desc,
		Price:       decimal.RequireFromString("59.99"),
		Quantity:    5,
		CategoryID:  category.ID,
		IsActive:    true,
	})
	uc, cacheRepo, _ := newCatalogUCForTest(productRepo, categoryRepo)

	newPrice := decimal.RequireFromString("49.99")
	product, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ID:    "p1",
		Price: &newPrice,
	})
	require.NoError(t, err)

	// Изменилась только цена, остальные поля не тронуты
	assert.Equal(t, "49.99", product.Price.StringFixed(2))
	assert.Equal(t, "Sneakers", product.Name)
	require.NotNil(t, product.Description)
	assert.Equal(t, desc, *product.Description)
	assert.Equal(t, int32(5), product.Quantity)

	assert.Equal(t, []string{"p1"}, cacheRepo.deletedIDs())
}

func TestUpdateProductValidatesMergedState(t *testing.T) {
	productRepo := newFakeProductRepo(activeProduct("p1", "59.99", 5))
	uc, _, _ := newCatalogUCForTest(productRepo, &fakeCategoryRepo{})

	badPrice := decimal.Zero
	_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{ID: "p1", Price: &badPrice})
	require.ErrorIs(t, err, e.ErrInvalidPrice)

	// Товар не изменился
	current, err := productRepo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "59.99", current.Price.StringFixed(2))
}

func TestUpdateProductNotFound(t *testing.T) {
	uc, _, _ := newCatalogUCForTest(newFakeProductRepo(), &fakeCategoryRepo{})

	name := "Sneakers"
	_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{ID: "missing", Name: &name})
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	productRepo := newFakeProductRepo(activeProduct("p1", "59.99", 5))
	uc, cacheRepo, _ := newCatalogUCForTest(productRepo, &fakeCategoryRepo{})

	require.NoError(t, uc.DeleteProduct(context.Background(), "p1"))

	// Мягкое удаление: запись остается, товар скрыт из каталога
	current, err := productRepo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.False(t, current.IsActive)

	assert.Equal(t, []string{"p1"}, cacheRepo.deletedIDs())
}

func TestDeleteProductNotFound(t *testing.T) {
	uc, cacheRepo, _ := newCatalogUCForTest(newFakeProductRepo(), &fakeCategoryRepo{})

	err := uc.DeleteProduct(context.Background(), "missing")
	require.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Empty(t, cacheRepo.deletedIDs())
}

func TestListCategories(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	seedCategory(t, categoryRepo, "Shoes", "shoes")
	seedCategory(t, categoryRepo, "Hats", "hats")

	uc, _, _ := newCatalogUCForTest(newFakeProductRepo(), categoryRepo)

	categories, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
}
