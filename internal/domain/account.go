package domain

// Registration is a new user account.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Account is a user account as the shelter API returns it.
type Account struct {
	ID    string
	Name  string
	Email string
	Role  string
}
