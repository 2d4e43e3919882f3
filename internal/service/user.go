// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/userecho/userecho/internal/metrics"
	"github.com/userecho/userecho/internal/model"
)

// Service errors.
var (
	ErrMissingFields = errors.New("name and email are required")
	ErrInvalidEmail  = errors.New("invalid email format")
)

// emailPattern matches <local>@<domain>.<tld> where no part contains
// whitespace or '@'.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const simpleEmailTag = "simple_email"

// UserService builds user records from validated input.
type UserService struct {
	validate *validator.Validate
	metrics  metrics.Recorder
	now      func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(simpleEmailTag, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return &UserService{
		validate: v,
		metrics:  recorder,
		now:      time.Now,
	}
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,simple_email"`
}

// CreateUser validates input and returns a new, unsaved user.
// A missing field is reported before a malformed email.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &model.User{
		ID:        now.UnixMilli(),
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: now,
	}

	s.metrics.IncUserCreated()
	return user, nil
}

func (s *UserService) validateInput(input CreateUserInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate user input: %w", err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			s.metrics.IncUserRejected(metrics.ReasonMissingFields)
			return ErrMissingFields
		}
	}

	s.metrics.IncUserRejected(metrics.ReasonInvalidEmail)
	return ErrInvalidEmail
}
