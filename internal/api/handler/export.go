package handler

import (
	"net/http"
	"time"

	"github.com/Rerimoura/venn-biz/internal/domain"
	"github.com/Rerimoura/venn-biz/internal/usecases/crossselling"
	"github.com/Rerimoura/venn-biz/internal/usecases/exporting"
	"github.com/Rerimoura/venn-biz/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportDetailTable recalcula a análise com os parâmetros da query string e
// devolve a tabela de detalhamento da partição pedida como planilha xlsx.
func ExportDetailTable(service crossselling.CrossSellAnalyzer, exporter exporting.TableExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partition := httprouter.ParamsFromContext(r.Context()).ByName("partition")

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

		rows, err := partitionRows(analysis, partition)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownPartition, err.Error(), nil)
			return
		}

		buffer, fileName, err := exporter.DetailTableWorkbook(rows, partition, time.Now())
		if err != nil {
			if errors.Is(err, exporting.ErrUnknownPartition) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownPartition, err.Error(), nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
		if _, err := w.Write(buffer.Bytes()); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar planilha para o cliente")
		}
	}
}

func partitionRows(analysis *domain.CrossSellAnalysis, partition string) ([]domain.CustomerDetailRow, error) {
	switch partition {
	case domain.PartitionOnlyA:
		return analysis.Tables.OnlyA, nil
	case domain.PartitionOnlyB:
		return analysis.Tables.OnlyB, nil
	case domain.PartitionBoth:
		return analysis.Tables.Both, nil
	default:
		return nil, exporting.ErrUnknownPartition
	}
}
