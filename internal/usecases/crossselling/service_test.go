package crossselling

import (
	"context"
	"testing"
	"time"

	"github.com/Rerimoura/venn-biz/infrastructure/repository/mocks"
	"github.com/Rerimoura/venn-biz/internal/config"
	"github.com/Rerimoura/venn-biz/internal/domain"
	"github.com/Rerimoura/venn-biz/pkg/cache"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestServiceAnalyze(t *testing.T) {
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	newRequest := func(productA, productB string) *domain.AnalysisRequest {
		return &domain.AnalysisRequest{
			StartDate: startDate,
			EndDate:   endDate,
			ProductA:  productA,
			ProductB:  productB,
		}
	}

	t.Run("Produtos iguais são rejeitados sem consultar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		service := NewService(mockSaleRepo, cache.New(time.Minute), &config.Config{})

		_, err := service.Analyze(context.Background(), newRequest("PA", "PA"))

		assert.ErrorIs(t, err, ErrSameProduct)
	})

	t.Run("Produto ausente é rejeitado sem consultar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		service := NewService(mockSaleRepo, cache.New(time.Minute), &config.Config{})

		_, err := service.Analyze(context.Background(), newRequest("PA", ""))

		assert.ErrorIs(t, err, ErrMissingProduct)
	})

	t.Run("Período sem vendas retorna erro de período vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().
			GetSalesByPeriod(gomock.Any(), startDate, endDate).
			Return([]domain.SaleRecord{}, nil)

		service := NewService(mockSaleRepo, cache.New(time.Minute), &config.Config{})

		_, err := service.Analyze(context.Background(), newRequest("PA", "PB"))

		assert.ErrorIs(t, err, ErrEmptyPeriod)
	})

	t.Run("Análise completa monta resumo, gráficos e tabelas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		records := []domain.SaleRecord{
			saleRecord("C1", "PA", 1),
			saleRecord("C1", "PB", 2),
			saleRecord("C2", "PA", 3),
			saleRecord("C3", "PB", 4),
		}

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().
			GetSalesByPeriod(gomock.Any(), startDate, endDate).
			Return(records, nil)

		service := NewService(mockSaleRepo, cache.New(time.Minute), &config.Config{})

		analysis, err := service.Analyze(context.Background(), newRequest("PA", "PB"))

		assert.NoError(t, err)
		assert.Equal(t, 2, analysis.Summary.TotalA)
		assert.Equal(t, 2, analysis.Summary.TotalB)
		assert.Equal(t, 1, analysis.Summary.OnlyA)
		assert.Equal(t, 1, analysis.Summary.OnlyB)
		assert.Equal(t, 1, analysis.Summary.Both)
		assert.Equal(t, 3, analysis.Summary.TotalCustomers)
		assert.Equal(t, 50.0, analysis.Summary.ConversionRate)
		assert.Equal(t, 4, analysis.Summary.RecordCount)

		assert.Equal(t, "PA", analysis.Venn.LabelA)
		assert.Equal(t, "PB", analysis.Venn.LabelB)
		assert.Equal(t, 1, analysis.Venn.Both)

		assert.Equal(t, []string{"Apenas Produto A", "Ambos", "Apenas Produto B"}, analysis.Bar.Categories)
		assert.Equal(t, []int{1, 1, 1}, analysis.Bar.Values)

		assert.Len(t, analysis.Tables.OnlyA, 1)
		assert.Equal(t, "C2", analysis.Tables.OnlyA[0].CustomerID)
		assert.Len(t, analysis.Tables.OnlyB, 1)
		assert.Equal(t, "C3", analysis.Tables.OnlyB[0].CustomerID)
		assert.Len(t, analysis.Tables.Both, 1)
		assert.Equal(t, "C1", analysis.Tables.Both[0].CustomerID)
	})

	t.Run("Filtros são aplicados antes do cálculo das partições", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bh := "Belo Horizonte"
		udi := "Uberlândia"
		records := []domain.SaleRecord{
			{CustomerID: "C1", ProductID: "PA", EmissionDate: startDate, City: &bh},
			{CustomerID: "C1", ProductID: "PB", EmissionDate: startDate, City: &udi},
			{CustomerID: "C2", ProductID: "PA", EmissionDate: startDate, City: &bh},
		}

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().
			GetSalesByPeriod(gomock.Any(), startDate, endDate).
			Return(records, nil)

		service := NewService(mockSaleRepo, cache.New(time.Minute), &config.Config{})

		req := newRequest("PA", "PB")
		req.Filters = domain.SaleFilters{Cities: []string{"Belo Horizonte"}}

		analysis, err := service.Analyze(context.Background(), req)

		assert.NoError(t, err)
		// A venda de PB de C1 foi filtrada, então não há interseção
		assert.Equal(t, 2, analysis.Summary.OnlyA)
		assert.Equal(t, 0, analysis.Summary.Both)
		assert.Equal(t, 2, analysis.Summary.RecordCount)
	})

	t.Run("Segunda análise do mesmo período reutiliza o cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		records := []domain.SaleRecord{
			saleRecord("C1", "PA", 1),
			saleRecord("C2", "PB", 2),
		}

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().
			GetSalesByPeriod(gomock.Any(), startDate, endDate).
			Return(records, nil).
			Times(1)

		service := NewService(mockSaleRepo, cache.New(time.Minute), &config.Config{})

		_, err := service.Analyze(context.Background(), newRequest("PA", "PB"))
		assert.NoError(t, err)

		// Mesmo período, produtos diferentes: o banco não é consultado de novo
		_, err = service.Analyze(context.Background(), newRequest("PB", "PA"))
		assert.NoError(t, err)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSaleRepo.EXPECT().
			GetSalesByPeriod(gomock.Any(), startDate, endDate).
			Return(nil, assert.AnError)

		service := NewService(mockSaleRepo, cache.New(time.Minute), &config.Config{})

		_, err := service.Analyze(context.Background(), newRequest("PA", "PB"))

		assert.ErrorIs(t, err, assert.AnError)
	})
}
