package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is returned for nil and unrecognised errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a duplicate key in a unique constraint or index.
	UniqueViolation

	// ForeignKeyViolation indicates a reference to a missing parent row.
	ForeignKeyViolation

	// CheckViolation indicates a value rejected by a CHECK constraint.
	CheckViolation

	// Retryable indicates a transient failure (lost connection, deadlock,
	// busy database) that may succeed if attempted again.
	Retryable
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case CheckViolation:
		return "check_violation"
	case Retryable:
		return "retryable"
	default:
		return "unclassified"
	}
}
