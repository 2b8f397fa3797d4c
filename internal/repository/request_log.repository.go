package repository

import (
	"fmt"
	"time"

	"portfoliobook/internal/db/models/postgres/public/model"
	"portfoliobook/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// RequestLogRepository persists one audit row per API call. Writes are
// best-effort: the middleware logs failures and moves on.
type RequestLogRepository interface {
	Add(db qrm.DB, req model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.DB, req model.APIRequest) error
}

type RequestLogRepositoryHandler struct{}

func (h RequestLogRepositoryHandler) Add(db qrm.DB, req model.APIRequest) (*model.APIRequest, error) {
	req.RequestID = uuid.New()
	if req.StartTs.IsZero() {
		req.StartTs = time.Now().UTC()
	}

	t := table.APIRequest
	query := t.INSERT(t.AllColumns).MODEL(req).RETURNING(t.AllColumns)

	out := model.APIRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return &out, nil
}

func (h RequestLogRepositoryHandler) Update(db qrm.DB, req model.APIRequest) error {
	t := table.APIRequest
	query := t.UPDATE(t.StatusCode, t.DurationMs, t.ResponseBody).
		SET(req.StatusCode, req.DurationMs, req.ResponseBody).
		WHERE(t.RequestID.EQ(postgres.String(req.RequestID.String())))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}

	return nil
}
