package crossselling

import (
	"context"
	"errors"
	"time"

	"github.com/Rerimoura/venn-biz/infrastructure/repository"
	"github.com/Rerimoura/venn-biz/internal/config"
	"github.com/Rerimoura/venn-biz/internal/domain"
	"github.com/Rerimoura/venn-biz/pkg/cache"
	"github.com/Rerimoura/venn-biz/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Erros de negócio de uma rodada de análise. São terminais para a rodada: o
// usuário corrige a seleção e tenta de novo.
var (
	ErrMissingProduct = errors.New("é necessário informar os dois produtos da análise")
	ErrSameProduct    = errors.New("produto A e produto B devem ser diferentes")
	ErrEmptyPeriod    = errors.New("nenhuma venda encontrada para o período selecionado")
)

// Categorias do gráfico de barras, na ordem de exibição do painel.
var barCategories = []string{"Apenas Produto A", "Ambos", "Apenas Produto B"}

// CrossSellAnalyzer executa uma rodada completa de análise de venda cruzada.
type CrossSellAnalyzer interface {
	Analyze(ctx context.Context, req *domain.AnalysisRequest) (*domain.CrossSellAnalysis, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	cache    *cache.Cache
	cfg      *config.Config
}

func NewService(saleRepo repository.SaleRepository, salesCache *cache.Cache, cfg *config.Config) CrossSellAnalyzer {
	return &Service{
		saleRepo: saleRepo,
		cache:    salesCache,
		cfg:      cfg,
	}
}

// Analyze valida a seleção, busca as vendas do período (memoizadas por
// intervalo de datas), aplica os filtros e monta o resultado completo:
// resumo, dados dos gráficos e as três tabelas de detalhamento.
func (s *Service) Analyze(ctx context.Context, req *domain.AnalysisRequest) (*domain.CrossSellAnalysis, error) {
	if req.ProductA == "" || req.ProductB == "" {
		return nil, ErrMissingProduct
	}
	if req.ProductA == req.ProductB {
		return nil, ErrSameProduct
	}

	records, err := s.fetchSales(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyPeriod
	}

	filtered := ApplyFilters(records, req.Filters)

	result := Analyze(filtered, req.ProductA, req.ProductB)

	summary := domain.CrossSellSummary{
		TotalA:         result.TotalA(),
		TotalB:         result.TotalB(),
		OnlyA:          len(result.OnlyA),
		OnlyB:          len(result.OnlyB),
		Both:           len(result.Both),
		TotalCustomers: len(result.OnlyA) + len(result.OnlyB) + len(result.Both),
		ConversionRate: utils.RoundWithTwoDecimalPlace(ConversionRate(result)),
		RecordCount:    len(filtered),
	}

	logrus.WithFields(logrus.Fields{
		"product_a":       req.ProductA,
		"product_b":       req.ProductB,
		"records":         len(filtered),
		"only_a":          summary.OnlyA,
		"only_b":          summary.OnlyB,
		"both":            summary.Both,
		"conversion_rate": summary.ConversionRate,
	}).Debug("Análise de venda cruzada calculada")

	return &domain.CrossSellAnalysis{
		Request: req,
		Summary: summary,
		Venn: domain.VennDiagram{
			LabelA: req.ProductA,
			LabelB: req.ProductB,
			OnlyA:  summary.OnlyA,
			OnlyB:  summary.OnlyB,
			Both:   summary.Both,
		},
		Bar: domain.BarChart{
			Categories: barCategories,
			Values:     []int{summary.OnlyA, summary.Both, summary.OnlyB},
		},
		Tables: domain.DetailTables{
			OnlyA: BuildDetailTable(filtered, result.OnlyA, req.ProductA),
			OnlyB: BuildDetailTable(filtered, result.OnlyB, req.ProductB),
			Both:  BuildBothDetailTable(filtered, result.Both, req.ProductA, req.ProductB),
		},
	}, nil
}

// fetchSales busca as vendas do período com memoização por intervalo de
// datas. A análise é correta com dado vindo do cache ou de uma busca nova; o
// cache só evita idas repetidas ao banco enquanto o usuário ajusta filtros.
func (s *Service) fetchSales(ctx context.Context, startDate, endDate time.Time) ([]domain.SaleRecord, error) {
	key := cache.Key("sales", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))

	if cached, ok := s.cache.Get(key); ok {
		if records, ok := cached.([]domain.SaleRecord); ok {
			logrus.WithField("cache_key", key).Debug("Vendas do período obtidas do cache")
			return records, nil
		}
	}

	records, err := s.saleRepo.GetSalesByPeriod(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, records)
	return records, nil
}
