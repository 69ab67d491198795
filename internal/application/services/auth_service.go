package services

import (
	"context"
	"fmt"

	"inventory-service/internal/application/command"
	"inventory-service/internal/application/interfaces"
	"inventory-service/internal/application/mapper"
	"inventory-service/internal/domain"
	"inventory-service/internal/domain/entities"
	"inventory-service/internal/domain/repositories"
	"inventory-service/internal/infrastructure"
)

type AuthService struct {
	userRepo   repositories.UserRepository
	jwtService *infrastructure.JWTService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
) interfaces.AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *AuthService) Signup(ctx context.Context, signupCommand *command.SignupUserCommand) (*command.SignupUserCommandResult, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, signupCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	newUser := entities.NewUser(signupCommand.Name, signupCommand.Email, signupCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := newUser.HashPassword(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.Create(ctx, validatedUser); err != nil {
		return nil, err
	}

	return &command.SignupUserCommandResult{
		Message: "User registered successfully",
	}, nil
}

// Login deliberately reports the same invalid-credentials error whether the
// email is unknown or the password is wrong.
func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}
