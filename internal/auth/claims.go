package auth

import "factionhq/quartermaster/internal/constants"

// UserClaims is what the rest of the core needs from an authenticated
// session: who is acting, in which faction, with what role, and the
// game-world credential to fetch on their behalf.
type UserClaims interface {
	CharacterID() string
	FactionID() string
	Role() constants.FactionRole
	GameToken() string
	Source() string
}

// SessionClaims are the claims carried by a bearer session token.
type SessionClaims struct {
	CharacterIDVal string
	FactionIDVal   string
	RoleVal        constants.FactionRole
	GameTokenVal   string
}

func (c *SessionClaims) CharacterID() string          { return c.CharacterIDVal }
func (c *SessionClaims) FactionID() string            { return c.FactionIDVal }
func (c *SessionClaims) Role() constants.FactionRole  { return c.RoleVal }
func (c *SessionClaims) GameToken() string            { return c.GameTokenVal }
func (c *SessionClaims) Source() string               { return "JWT" }
