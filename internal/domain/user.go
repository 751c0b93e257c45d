package domain

// Preferences holds a user's saved recommendation preferences.
type Preferences struct {
	FavoriteGenres []string `json:"favorite_genres,omitempty"`
	PreferredStyle string   `json:"preferred_style,omitempty"`
	Moods          []string `json:"moods,omitempty"`
}

// User is the authenticated user record returned by the auth backend.
type User struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Preferences Preferences `json:"preferences"`
}

// Session pairs the auth token with its user record. Both fields are set
// together on login and cleared together on logout; a session with only
// one of them populated is treated as logged out.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// IsAuthenticated reports whether the session carries a token. It is
// derived, never stored, so it cannot diverge from the token itself.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// UserID returns the session's user id, or "" when logged out.
func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}
