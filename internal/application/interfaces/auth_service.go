package interfaces

import (
	"context"

	"inventory-service/internal/application/command"
)

type AuthService interface {
	Signup(ctx context.Context, signupCommand *command.SignupUserCommand) (*command.SignupUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
}
