package referencing

import (
	"context"
	"testing"
	"time"

	"github.com/Rerimoura/venn-biz/infrastructure/repository/mocks"
	"github.com/Rerimoura/venn-biz/internal/config"
	"github.com/Rerimoura/venn-biz/pkg/cache"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Reference: config.Reference{
			ProductMinCost:   0.01,
			ProductDivisions: []int{2, 3},
			CustomerRegionUF: "MG",
		},
	}
}

func TestServiceProducts(t *testing.T) {
	t.Run("Primeira chamada consulta o banco e a segunda usa o cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().
			ListProducts(gomock.Any(), 0.01, []int{2, 3}).
			Return([]string{"100234", "200123"}, nil).
			Times(1)

		service := NewService(mockSaleRepo, cache.New(time.Minute), newTestConfig())

		products, err := service.Products(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"100234", "200123"}, products)

		products, err = service.Products(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"100234", "200123"}, products)
	})

	t.Run("Erro do repositório é propagado e nada é memoizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().
			ListProducts(gomock.Any(), 0.01, []int{2, 3}).
			Return(nil, assert.AnError).
			Times(2)

		service := NewService(mockSaleRepo, cache.New(time.Minute), newTestConfig())

		_, err := service.Products(context.Background())
		assert.Error(t, err)

		_, err = service.Products(context.Background())
		assert.Error(t, err)
	})
}

func TestServiceCities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().
		ListCities(gomock.Any(), "MG").
		Return([]string{"Belo Horizonte", "Uberlândia"}, nil)

	service := NewService(mockSaleRepo, cache.New(time.Minute), newTestConfig())

	cities, err := service.Cities(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Belo Horizonte", "Uberlândia"}, cities)
}

func TestServiceWarmup(t *testing.T) {
	t.Run("Warmup descarta o cache e recarrega as três listas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		// Duas idas ao banco por lista: a carga inicial e a recarga do warmup
		mockSaleRepo.EXPECT().
			ListProducts(gomock.Any(), 0.01, []int{2, 3}).
			Return([]string{"100234"}, nil).
			Times(2)
		mockSaleRepo.EXPECT().
			ListCities(gomock.Any(), "MG").
			Return([]string{"Belo Horizonte"}, nil).
			Times(2)
		mockSaleRepo.EXPECT().
			ListSalespeople(gomock.Any()).
			Return([]string{"CARLOS"}, nil).
			Times(2)

		service := NewService(mockSaleRepo, cache.New(time.Minute), newTestConfig())

		_, err := service.Products(context.Background())
		assert.NoError(t, err)
		_, err = service.Cities(context.Background())
		assert.NoError(t, err)
		_, err = service.Salespeople(context.Background())
		assert.NoError(t, err)

		err = service.Warmup(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Erro em uma das listas interrompe o warmup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().
			ListProducts(gomock.Any(), 0.01, []int{2, 3}).
			Return(nil, assert.AnError)

		service := NewService(mockSaleRepo, cache.New(time.Minute), newTestConfig())

		err := service.Warmup(context.Background())
		assert.Error(t, err)
	})
}
