package domain

const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var ValidStatuses = []string{StatusNew, StatusContacted, StatusScheduled, StatusCompleted, StatusCancelled}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SortableFields maps caller-facing sort keys to real columns. Anything
// outside this set is rejected rather than passed through to SQL.
var SortableFields = map[string]struct{}{
	"createdAt":         {},
	"updatedAt":         {},
	"name":              {},
	"email":             {},
	"company":           {},
	"status":            {},
	"preferredDateTime": {},
}

func IsSortableField(field string) bool {
	_, ok := SortableFields[field]
	return ok
}
