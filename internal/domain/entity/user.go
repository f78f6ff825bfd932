// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// UserProfile is the account information returned by the backend for the
// currently authenticated user. It lives only in the active screen's state
// and is refetched on demand, never cached across screens.
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Initials returns up to two uppercase initials for avatar-style rendering.
func (p UserProfile) Initials() string {
	initials := make([]rune, 0, 2)
	for _, word := range strings.Fields(p.Name) {
		initials = append(initials, []rune(word)[0])
		if len(initials) == 2 {
			break
		}
	}

	return strings.ToUpper(string(initials))
}
