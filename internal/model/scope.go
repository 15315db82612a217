package model

// Scope identifies who issued a command.
type Scope struct {
	UserID   string
	Username string
}
