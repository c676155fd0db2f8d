package referencing

import (
	"context"

	"github.com/Rerimoura/venn-biz/infrastructure/repository"
	"github.com/Rerimoura/venn-biz/internal/config"
	"github.com/Rerimoura/venn-biz/pkg/cache"
	"github.com/sirupsen/logrus"
)

// Chaves das listas de referência no cache.
const (
	productsKey    = "references:products"
	citiesKey      = "references:cities"
	salespeopleKey = "references:salespeople"
)

// ReferenceLister fornece as listas que populam os seletores do painel.
// Nenhuma faz parte do cálculo da análise em si.
type ReferenceLister interface {
	Products(ctx context.Context) ([]string, error)
	Cities(ctx context.Context) ([]string, error)
	Salespeople(ctx context.Context) ([]string, error)
	Warmup(ctx context.Context) error
}

type Service struct {
	saleRepo repository.SaleRepository
	cache    *cache.Cache
	cfg      *config.Config
}

func NewService(saleRepo repository.SaleRepository, referenceCache *cache.Cache, cfg *config.Config) ReferenceLister {
	return &Service{
		saleRepo: saleRepo,
		cache:    referenceCache,
		cfg:      cfg,
	}
}

// Products lista os códigos de mercadoria elegíveis para o seletor de
// produtos, com memoização.
func (s *Service) Products(ctx context.Context) ([]string, error) {
	return s.cachedList(ctx, productsKey, func(ctx context.Context) ([]string, error) {
		return s.saleRepo.ListProducts(ctx, s.cfg.Reference.ProductMinCost, s.cfg.Reference.ProductDivisions)
	})
}

// Cities lista as cidades de clientes da UF configurada.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	return s.cachedList(ctx, citiesKey, func(ctx context.Context) ([]string, error) {
		return s.saleRepo.ListCities(ctx, s.cfg.Reference.CustomerRegionUF)
	})
}

// Salespeople lista os vendedores ativos.
func (s *Service) Salespeople(ctx context.Context) ([]string, error) {
	return s.cachedList(ctx, salespeopleKey, func(ctx context.Context) ([]string, error) {
		return s.saleRepo.ListSalespeople(ctx)
	})
}

// Warmup recarrega as três listas no cache, descartando o que estava lá.
// Usado pelo agendador e pelo disparo manual via API.
func (s *Service) Warmup(ctx context.Context) error {
	s.cache.Delete(productsKey)
	s.cache.Delete(citiesKey)
	s.cache.Delete(salespeopleKey)

	if _, err := s.Products(ctx); err != nil {
		return err
	}
	if _, err := s.Cities(ctx); err != nil {
		return err
	}
	if _, err := s.Salespeople(ctx); err != nil {
		return err
	}

	logrus.Info("Listas de referência recarregadas no cache")
	return nil
}

func (s *Service) cachedList(ctx context.Context, key string, load func(context.Context) ([]string, error)) ([]string, error) {
	if cached, ok := s.cache.Get(key); ok {
		if values, ok := cached.([]string); ok {
			return values, nil
		}
	}

	values, err := load(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, values)
	return values, nil
}
