package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfoliobook/internal/db/models/postgres/public/model"
	"portfoliobook/internal/db/models/postgres/public/table"
	"portfoliobook/internal/domain"
	"portfoliobook/pkg/apperr"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/lib/pq"
)

// ConsultationListFilter carries the list endpoint's filter, sort and
// pagination inputs. Zero values mean "use the default".
type ConsultationListFilter struct {
	Status    string
	Search    string
	Limit     int64
	Offset    int64
	SortBy    string
	SortOrder string
}

const (
	DefaultListLimit = 50

	// pq error code for unique_violation
	uniqueViolationCode = "23505"
)

type ConsultationRepository interface {
	// Create inserts a new consultation. A unique-constraint rejection
	// on email surfaces as a CONFLICT error so concurrent submissions
	// that raced past the existence check get the same answer as a
	// pre-checked duplicate.
	Create(c model.Consultation) (*model.Consultation, error)
	// FindByEmail returns nil, nil when no record exists. The caller is
	// expected to pass an already-normalized (lowercased) email.
	FindByEmail(email string) (*model.Consultation, error)
	FindByID(id int32) (*model.Consultation, error)
	List(filter ConsultationListFilter) ([]model.Consultation, int64, error)
	UpdateStatus(id int32, status string) (*model.Consultation, error)
}

type consultationRepositoryHandler struct {
	DB *sql.DB
}

func NewConsultationRepository(db *sql.DB) ConsultationRepository {
	return consultationRepositoryHandler{
		DB: db,
	}
}

func (h consultationRepositoryHandler) Create(c model.Consultation) (*model.Consultation, error) {
	t := table.Consultation

	if c.Status == "" {
		c.Status = domain.StatusNew
	}
	c.CreatedAt = time.Now().UTC()

	query := t.INSERT(t.MutableColumns).MODEL(c).RETURNING(t.AllColumns)

	out := model.Consultation{}
	err := query.Query(h.DB, &out)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, apperr.Wrap(apperr.CodeConflict, "A consultation request already exists for this email.", err)
		}
		return nil, fmt.Errorf("failed to insert consultation: %w", err)
	}

	return &out, nil
}

func (h consultationRepositoryHandler) FindByEmail(email string) (*model.Consultation, error) {
	t := table.Consultation

	query := t.SELECT(t.AllColumns).WHERE(t.Email.EQ(postgres.String(email))).LIMIT(1)

	out := model.Consultation{}
	err := query.Query(h.DB, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation by email: %w", err)
	}

	return &out, nil
}

func (h consultationRepositoryHandler) FindByID(id int32) (*model.Consultation, error) {
	t := table.Consultation

	query := t.SELECT(t.AllColumns).WHERE(t.ID.EQ(postgres.Int32(id))).LIMIT(1)

	out := model.Consultation{}
	err := query.Query(h.DB, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, apperr.New(apperr.CodeNotFound, "Consultation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation %d: %w", id, err)
	}

	return &out, nil
}

var consultationSortColumns = map[string]postgres.Expression{
	"createdAt":         table.Consultation.CreatedAt,
	"updatedAt":         table.Consultation.UpdatedAt,
	"name":              table.Consultation.Name,
	"email":             table.Consultation.Email,
	"company":           table.Consultation.Company,
	"status":            table.Consultation.Status,
	"preferredDateTime": table.Consultation.PreferredDateTime,
}

func (h consultationRepositoryHandler) List(filter ConsultationListFilter) ([]model.Consultation, int64, error) {
	t := table.Consultation

	conditions := []postgres.BoolExpression{}
	if filter.Status != "" {
		conditions = append(conditions, t.Status.EQ(postgres.String(filter.Status)))
	}
	if filter.Search != "" {
		pattern := postgres.String("%" + strings.ToLower(filter.Search) + "%")
		conditions = append(conditions,
			postgres.LOWER(t.Name).LIKE(pattern).
				OR(postgres.LOWER(t.Email).LIKE(pattern)).
				OR(postgres.LOWER(t.Company).LIKE(pattern)),
		)
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortColumn, ok := consultationSortColumns[sortBy]
	if !ok || !domain.IsSortableField(sortBy) {
		return nil, 0, apperr.New(apperr.CodeValidation, fmt.Sprintf("invalid sort field: %s", sortBy))
	}
	orderBy := sortColumn.DESC()
	if strings.EqualFold(filter.SortOrder, "asc") {
		orderBy = sortColumn.ASC()
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	where := postgres.Bool(true)
	for _, c := range conditions {
		where = where.AND(c)
	}

	query := t.SELECT(t.AllColumns).WHERE(where).ORDER_BY(orderBy).LIMIT(limit).OFFSET(offset)
	countQuery := t.SELECT(postgres.COUNT(t.ID).AS("total")).WHERE(where)

	out := []model.Consultation{}
	err := query.Query(h.DB, &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, 0, fmt.Errorf("failed to list consultations: %w", err)
	}

	totalDest := struct {
		Total int64
	}{}
	err = countQuery.Query(h.DB, &totalDest)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count consultations: %w", err)
	}

	return out, totalDest.Total, nil
}

func (h consultationRepositoryHandler) UpdateStatus(id int32, status string) (*model.Consultation, error) {
	if !domain.IsValidStatus(status) {
		return nil, apperr.New(apperr.CodeValidation,
			fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(domain.ValidStatuses, ", ")))
	}

	t := table.Consultation

	query := t.UPDATE(t.Status, t.UpdatedAt).
		SET(status, time.Now().UTC()).
		WHERE(t.ID.EQ(postgres.Int32(id))).
		RETURNING(t.AllColumns)

	out := model.Consultation{}
	err := query.Query(h.DB, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, apperr.New(apperr.CodeNotFound, "Consultation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update consultation %d status: %w", id, err)
	}

	return &out, nil
}
