package command

type SignupUserCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupUserCommandResult confirms registration only; signup does not log
// the user in.
type SignupUserCommandResult struct {
	Message string `json:"message"`
}
