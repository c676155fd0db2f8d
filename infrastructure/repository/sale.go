package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rerimoura/venn-biz/infrastructure/database/postgres"
	"github.com/Rerimoura/venn-biz/internal/domain"
)

const (
	salesTable = "vendas v"
)

// SaleRepository expõe a leitura das vendas do período e as listas de
// referência usadas pelos seletores do painel.
type SaleRepository interface {
	GetSalesByPeriod(ctx context.Context, startDate, endDate time.Time) ([]domain.SaleRecord, error)
	ListProducts(ctx context.Context, minCost float64, divisions []int) ([]string, error)
	ListCities(ctx context.Context, regionUF string) ([]string, error)
	ListSalespeople(ctx context.Context) ([]string, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// GetSalesByPeriod busca as vendas com data de emissão dentro do intervalo
// inclusivo, já juntadas com o cadastro do cliente e a descrição da
// mercadoria, ordenadas da emissão mais recente para a mais antiga. Período
// sem vendas retorna lista vazia, não erro.
func (r *saleRepository) GetSalesByPeriod(ctx context.Context, startDate, endDate time.Time) ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select(
			"v.cliente",
			"v.mercadoria",
			"v.data_emissao",
			"v.valor_liq",
			"v.quant",
			"v.vendedor",
			"c.cidade",
			"c.raz_social",
			"c.atividade",
			"c.rede",
			"m.descricao AS descricao_produto",
		).
		From(salesTable).
		Join("clientes c ON v.cliente = c.cliente").
		LeftJoin("mercadorias m ON v.mercadoria = m.mercadoria").
		Where(squirrel.GtOrEq{"v.data_emissao::date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"v.data_emissao::date": endDate.Format(time.DateOnly)}).
		OrderBy("v.data_emissao DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.SaleRecord{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var rec domain.SaleRecord
		err := rows.Scan(
			&rec.CustomerID,
			&rec.ProductID,
			&rec.EmissionDate,
			&rec.NetValue,
			&rec.Quantity,
			&rec.Salesperson,
			&rec.City,
			&rec.LegalName,
			&rec.Activity,
			&rec.Network,
			&rec.ProductDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// ListProducts retorna os códigos distintos de mercadoria elegíveis para o
// seletor: custo informado acima do mínimo e divisão dentro do conjunto
// permitido.
func (r *saleRepository) ListProducts(ctx context.Context, minCost float64, divisions []int) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT v.mercadoria").
		From(salesTable).
		Join("mercadorias m ON m.mercadoria = v.mercadoria").
		Where(squirrel.Gt{"m.custo_inf": minCost}).
		Where(squirrel.Eq{"m.divisao": divisions}).
		OrderBy("v.mercadoria").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryStrings(ctx, query, args)
}

// ListCities retorna as cidades distintas, não nulas, dos clientes com venda
// registrada na UF configurada.
func (r *saleRepository) ListCities(ctx context.Context, regionUF string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT c.cidade").
		From(salesTable).
		Join("clientes c ON v.cliente = c.cliente").
		Where("c.cidade IS NOT NULL").
		Where(squirrel.Eq{"c.uf": regionUF}).
		OrderBy("c.cidade").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryStrings(ctx, query, args)
}

// ListSalespeople retorna os vendedores distintos ainda ativos, isto é, sem
// data de desligamento.
func (r *saleRepository) ListSalespeople(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT v.vendedor").
		From(salesTable).
		Join("vendedores ve ON ve.vendedor = v.vendedor").
		Where("ve.data_desligamento IS NULL").
		OrderBy("v.vendedor").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryStrings(ctx, query, args)
}

func (r *saleRepository) queryStrings(ctx context.Context, query string, args []interface{}) ([]string, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []string{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("erro ao escanear valor: %w", err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return values, nil
}
