package domain

import "strings"

type StatusCategory string

const (
	StatusCompleted  StatusCategory = "completed"
	StatusInProgress StatusCategory = "in_progress"
	StatusPending    StatusCategory = "pending"
	StatusOther      StatusCategory = "other"
)

// ClassifyStatus buckets a free-text status into one category. The
// checks are case-insensitive substring matches and the precedence is
// fixed: completed wins over in-progress wins over pending. Anything
// unmatched is StatusOther and never lands in a named bucket.
func ClassifyStatus(status string) StatusCategory {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "completado") || strings.Contains(s, "terminado"):
		return StatusCompleted
	case strings.Contains(s, "curso") || strings.Contains(s, "proceso"):
		return StatusInProgress
	case strings.Contains(s, "pendiente"):
		return StatusPending
	default:
		return StatusOther
	}
}
