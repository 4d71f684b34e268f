package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/sergioruizlaf/user-service/internal/logger"
	"github.com/sergioruizlaf/user-service/internal/models"
	"github.com/sergioruizlaf/user-service/internal/validation"
)

// Error variables
var (
	ErrUsernameExists  = errors.New("username already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("password not valid")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	Update(ctx context.Context, user *models.User) error
	RecordLogin(ctx context.Context, id int64, lastLogin time.Time) error
	Delete(ctx context.Context, id int64) (int64, error)
}

// UserListCache defines the cached user list operations.
type UserListCache interface {
	Get(ctx context.Context) ([]models.User, error)
	Set(ctx context.Context, users []models.User) error
	Invalidate(ctx context.Context) error
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// UserService handles user CRUD, credential verification and token issuance.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserListCache
	jwt         TokenGenerator
	validator   *validation.UserValidator
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(
	reader UserReader,
	writer UserWriter,
	cache UserListCache,
	jwt TokenGenerator,
	kafkaWriter KafkaWriter,
) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		jwt:         jwt,
		validator:   validation.New(),
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a user lifecycle event to Kafka.
func (svc *UserService) publishEvent(ctx context.Context, operation string, userID int64, username string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation, "username", username)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		UserID:    userID,
		Username:  username,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal user event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish user event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("User event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

// invalidateList drops the cached user list after a mutation. Cache
// failures are logged, never surfaced: the store remains authoritative.
func (svc *UserService) invalidateList(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate user list cache", "err", err)
	}
}

// Create validates and persists a new user. It returns the created user,
// or the list of validation violations that blocked persistence.
func (svc *UserService) Create(ctx context.Context, username, password string, name, surname, email *string, active bool, age *int) (*models.User, []validation.Violation, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, nil, err
	}
	if existing != nil {
		logger.Log.Errorw("username already exists", "username", username)
		return nil, nil, ErrUsernameExists
	}

	user := models.User{
		Username:  username,
		Password:  password,
		Name:      name,
		Surname:   surname,
		Email:     email,
		Age:       age,
		Active:    active,
		CreatedAt: time.Now().Truncate(time.Second),
	}

	violations := svc.validator.ValidateUser(user)
	if len(violations) > 0 {
		return nil, violations, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, nil, err
	}
	user.Password = string(hashedPassword)

	id, err := svc.writer.Create(ctx, &user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, nil, err
	}
	user.ID = id

	svc.invalidateList(ctx)
	svc.publishEvent(ctx, "created", user.ID, user.Username)

	return &user, nil, nil
}

// Login verifies credentials, issues a bearer token and records the
// login time. The returned user carries the live token; only the
// last-login timestamp is persisted.
func (svc *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return nil, ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		// Legacy plaintext fallback: records created before hashing was
		// introduced store the password verbatim. Kept for compatibility,
		// remove once no such records remain.
		if user.Password != password {
			logger.Log.Errorw("invalid credentials", "username", username)
			return nil, ErrInvalidPassword
		}
	}

	token, err := svc.jwt.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, err
	}

	now := time.Now().Truncate(time.Second)
	if err := svc.writer.RecordLogin(ctx, user.ID, now); err != nil {
		logger.Log.Errorw("failed to record login", "err", err)
		return nil, err
	}

	user.LastLogin = &now
	user.Token = token

	svc.invalidateList(ctx)

	return user, nil
}

// Update applies the supplied optional fields to an existing user,
// re-validates the merged record and persists it. A nil parameter
// leaves the corresponding field unchanged.
func (svc *UserService) Update(ctx context.Context, id int64, name, surname *string, active *bool, age *int) (*models.User, []validation.Violation, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "id", id)
		return nil, nil, ErrUserNotFound
	}

	if name != nil && *name != "" {
		user.Name = name
	}
	if surname != nil && *surname != "" {
		user.Surname = surname
	}
	if age != nil {
		user.Age = age
	}
	if active != nil {
		user.Active = *active
	}

	violations := svc.validator.ValidateUser(*user)
	if len(violations) > 0 {
		return nil, violations, nil
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, nil, err
	}

	svc.invalidateList(ctx)
	svc.publishEvent(ctx, "updated", user.ID, user.Username)

	return user, nil, nil
}

// Delete removes a user by id. Deleting an already-deleted id reports
// ErrUserNotFound, so repeated deletes stay a client error.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	rowsAffected, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}
	if rowsAffected == 0 {
		logger.Log.Errorw("user does not exist", "id", id)
		return ErrUserNotFound
	}

	svc.invalidateList(ctx)
	svc.publishEvent(ctx, "deleted", id, "")

	return nil
}

// List returns all users, serving from the cache when possible.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			logger.Log.Errorw("failed to read user list cache", "err", err)
		}
	}

	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, users); err != nil {
			logger.Log.Errorw("failed to cache user list", "err", err)
		}
	}

	return users, nil
}
