package handler

import (
	"context"
	"net/http"

	"github.com/Rerimoura/venn-biz/internal/usecases/referencing"
	"github.com/Rerimoura/venn-biz/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ReferenceListResponse carrega uma lista de valores para os seletores do
// painel.
type ReferenceListResponse struct {
	Items []string `json:"items"`
}

// ListProducts lista os códigos de mercadoria elegíveis para a análise.
func ListProducts(service referencing.ReferenceLister) http.HandlerFunc {
	return listReference(service.Products, "Erro ao buscar produtos")
}

// ListCities lista as cidades de clientes disponíveis para filtro.
func ListCities(service referencing.ReferenceLister) http.HandlerFunc {
	return listReference(service.Cities, "Erro ao buscar cidades")
}

// ListSalespeople lista os vendedores ativos disponíveis para filtro.
func ListSalespeople(service referencing.ReferenceLister) http.HandlerFunc {
	return listReference(service.Salespeople, "Erro ao buscar vendedores")
}

func listReference(load func(ctx context.Context) ([]string, error), errorMessage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := load(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, errorMessage, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ReferenceListResponse{Items: items}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
