package handler

import (
	"net/http"
	"time"

	"github.com/Rerimoura/venn-biz/internal/domain"
	"github.com/Rerimoura/venn-biz/internal/usecases/crossselling"
	"github.com/Rerimoura/venn-biz/pkg/apiErrors"
	"github.com/Rerimoura/venn-biz/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AnalyzeCrossSell executa uma rodada de análise de venda cruzada entre os
// dois produtos informados, no período e com os filtros da query string.
func AnalyzeCrossSell(service crossselling.CrossSellAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseAnalysisRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		analysis, err := service.Analyze(r.Context(), req)
		if err != nil {
			handleAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// parseAnalysisRequest monta a requisição de análise a partir da query
// string. Datas ausentes caem na janela padrão dos últimos 90 dias.
func parseAnalysisRequest(r *http.Request) (*domain.AnalysisRequest, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, errors.New("data inicial inválida, use o formato AAAA-MM-DD")
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, errors.New("data final inválida, use o formato AAAA-MM-DD")
	}

	if startDate.IsZero() || endDate.IsZero() {
		defaultStart, defaultEnd := utils.DefaultPeriod(time.Now())
		if startDate.IsZero() {
			startDate = defaultStart
		}
		if endDate.IsZero() {
			endDate = defaultEnd
		}
	}

	if startDate.After(endDate) {
		return nil, errors.New("data inicial posterior à data final")
	}

	return &domain.AnalysisRequest{
		StartDate: startDate,
		EndDate:   endDate,
		ProductA:  query.Get("product_a"),
		ProductB:  query.Get("product_b"),
		Filters: domain.SaleFilters{
			Cities:      query["city"],
			Salespeople: query["salesperson"],
			Activities:  query["activity"],
			Networks:    query["network"],
		},
	}, nil
}

// handleAnalysisError mapeia os erros de negócio da análise para os códigos
// de erro da API.
func handleAnalysisError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, crossselling.ErrMissingProduct):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, crossselling.ErrSameProduct):
		apiErrors.WriteError(w, apiErrors.ErrSameProduct, err.Error(), nil)

	case errors.Is(err, crossselling.ErrEmptyPeriod):
		apiErrors.WriteError(w, apiErrors.ErrEmptyPeriod, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do período", nil)
	}
}
