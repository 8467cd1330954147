package enum

// DeleteOutcome tells apart the three ways a user deletion can end.
type DeleteOutcome string

const (
	Deleted               DeleteOutcome = "DELETED"
	SkippedAdminProtected DeleteOutcome = "SKIPPED_ADMIN_PROTECTED"
	NotFound              DeleteOutcome = "NOT_FOUND"
)
