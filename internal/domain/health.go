package domain

import (
	"context"
	"time"

	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/pkg/xcontext"
)

type HealthDomain interface {
	Check(context.Context, *model.HealthRequest) (*model.HealthResponse, error)
}

type healthDomain struct {
	dbStatus *common.DBStatus
}

func NewHealthDomain(dbStatus *common.DBStatus) HealthDomain {
	return &healthDomain{dbStatus: dbStatus}
}

// Check never touches the database. It reports the result of the last probe.
func (d *healthDomain) Check(
	ctx context.Context, req *model.HealthRequest,
) (*model.HealthResponse, error) {
	cfg := xcontext.Configs(ctx)

	status := model.DatabaseDisconnected
	if d.dbStatus.IsConnected() {
		status = model.DatabaseConnected
	}

	return &model.HealthResponse{
		Status:      model.OK("Server is healthy"),
		Timestamp:   time.Now().Format(model.DefaultTimeLayout),
		Environment: cfg.Env,
		Database: model.HealthDatabase{
			Status: status,
			Type:   cfg.Database.Driver,
		},
	}, nil
}
