package domain

// User is the authenticated user for the current session. At most one user
// is live at a time; it is persisted as the sole process-wide auth state.
type User struct {
	ID       string `json:"id"` // Generated at login time
	Username string `json:"username"`
}
