package report

import "github.com/fgillet-lagoon/hour-track/internal/models"

// Scope restricts which time entries a requester may aggregate or export.
// A nil UserID means every user's entries are visible.
type Scope struct {
	UserID *uint64
}

// VisibleScope applies the role policy for reporting:
// admins see the target user's entries when a target is given, otherwise
// everyone's; non-admins always see their own entries only, and any
// requested target is silently overridden instead of rejected so the
// response never reveals whether other users exist.
func VisibleScope(requester *models.User, targetUserID *uint64) Scope {
	if requester.IsAdmin {
		return Scope{UserID: targetUserID}
	}
	own := requester.ID
	return Scope{UserID: &own}
}

// Allows reports whether a single entry falls inside the scope.
func (s Scope) Allows(entry *models.TimeEntry) bool {
	return s.UserID == nil || entry.UserID == *s.UserID
}

// Filter returns the subset of entries visible under the scope,
// preserving input order.
func (s Scope) Filter(entries []models.TimeEntry) []models.TimeEntry {
	if s.UserID == nil {
		return entries
	}
	visible := make([]models.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if s.Allows(&e) {
			visible = append(visible, e)
		}
	}
	return visible
}
