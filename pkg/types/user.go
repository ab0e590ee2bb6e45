package types

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserSummary is the safe projection of a User returned to callers.
type UserSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Role: u.Role}
}

// Session is the result of a successful authentication.
type Session struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
