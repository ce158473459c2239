package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logger"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput       = errors.New("invalid account details")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserUseCase interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*domain.User, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type SignUpInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type UserService struct {
	repo     repository.UserRepository
	producer Producer
	topic    string
	validate *validator.Validate
	now      func() time.Time
}

// NewUserService wires account handling. producer may be nil.
func NewUserService(repo repository.UserRepository, producer Producer, topic string) *UserService {
	return &UserService{
		repo:     repo,
		producer: producer,
		topic:    topic,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *UserService) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	// Fields are stored as entered; email matching is exact.
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user := domain.User{Name: input.Name, Email: input.Email, Password: input.Password}
	if err := s.repo.Append(ctx, user); err != nil {
		return nil, err
	}
	logger.Log.InfoContext(ctx, "user registered", "email", user.Email)

	if s.producer != nil && s.topic != "" {
		event := kafka.NewEvent(kafka.EventUserRegistered, s.now())
		event.Email = user.Email
		event.Name = user.Name
		if err := s.producer.Publish(ctx, s.topic, user.Email, event); err != nil {
			logger.Log.WarnContext(ctx, "failed to publish signup event", "email", user.Email, "error", err)
		}
	}
	return &user, nil
}

// Login matches the stored credentials exactly.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	user, ok := s.repo.FindByCredentials(ctx, input.Email, input.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

var _ UserUseCase = (*UserService)(nil)
