package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/Rerimoura/venn-biz/infrastructure/repository/mocks"
	"github.com/Rerimoura/venn-biz/internal/config"
	"github.com/Rerimoura/venn-biz/internal/usecases/referencing"
	"github.com/Rerimoura/venn-biz/pkg/cache"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newWarmupService(t *testing.T, enabled bool) (*ReferenceWarmupService, *mocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	cfg := &config.Config{
		Reference: config.Reference{
			ProductMinCost:   0.01,
			ProductDivisions: []int{2, 3},
			CustomerRegionUF: "MG",
		},
		ReferenceWarmup: config.ReferenceWarmup{
			CronSchedule: "0 7 * * *",
			Enabled:      enabled,
		},
	}

	referenceService := referencing.NewService(mockSaleRepo, cache.New(time.Minute), cfg)
	return NewReferenceWarmupService(referenceService, cfg), mockSaleRepo
}

func TestReferenceWarmupServiceRunWarmup(t *testing.T) {
	t.Run("Recarrega as três listas de referência", func(t *testing.T) {
		service, mockSaleRepo := newWarmupService(t, true)

		mockSaleRepo.EXPECT().
			ListProducts(gomock.Any(), 0.01, []int{2, 3}).
			Return([]string{"100234"}, nil)
		mockSaleRepo.EXPECT().
			ListCities(gomock.Any(), "MG").
			Return([]string{"Belo Horizonte"}, nil)
		mockSaleRepo.EXPECT().
			ListSalespeople(gomock.Any()).
			Return([]string{"CARLOS"}, nil)

		err := service.RunWarmup(context.Background())

		assert.NoError(t, err)
		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Erro na recarga é propagado", func(t *testing.T) {
		service, mockSaleRepo := newWarmupService(t, true)

		mockSaleRepo.EXPECT().
			ListProducts(gomock.Any(), 0.01, []int{2, 3}).
			Return(nil, assert.AnError)

		err := service.RunWarmup(context.Background())

		assert.Error(t, err)
	})

	t.Run("Execução concorrente é ignorada", func(t *testing.T) {
		service, _ := newWarmupService(t, true)

		service.syncRunning = true

		err := service.RunWarmup(context.Background())

		assert.NoError(t, err)
	})
}

func TestReferenceWarmupServiceStart(t *testing.T) {
	t.Run("Desabilitado por configuração não agenda nada", func(t *testing.T) {
		service, _ := newWarmupService(t, false)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := service.Start(ctx)

		assert.NoError(t, err)
	})
}

func TestReferenceWarmupServiceGetStatus(t *testing.T) {
	service, _ := newWarmupService(t, true)

	status := service.GetStatus()

	assert.Equal(t, true, status["warmup_enabled"])
	assert.Equal(t, "0 7 * * *", status["warmup_cron"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}
