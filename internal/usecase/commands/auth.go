package commands

import (
	"context"

	"slotswapper/internal/domain/user"
	"slotswapper/internal/infra"
	"slotswapper/internal/pkg/errs"
	"slotswapper/internal/pkg/jwt"
	"slotswapper/internal/pkg/password"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyRegistered  = errs.New("email already registered")
	ErrInvalidCredentials      = errs.New("invalid email or password")
	ErrUserNotFound            = errs.New("user not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type AuthResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Signup(ctx context.Context, name string, creds user.Credentials) (*AuthResult, error)
	Login(ctx context.Context, creds user.Credentials) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	userReads queries.UserReadStore
	tokens    *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userReads queries.UserReadStore, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, userReads: userReads, tokens: tokens}
}

func (c *authCommandsImpl) Signup(ctx context.Context, name string, creds user.Credentials) (*AuthResult, error) {
	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(name, creds.Email(), hash)

	var userID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, u)
		if err != nil {
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailAlreadyRegistered)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.issueToken(ctx, userID)
}

func (c *authCommandsImpl) Login(ctx context.Context, creds user.Credentials) (*AuthResult, error) {
	view, hash, err := c.userReads.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := c.tokens.GenerateToken(view.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}
	return &AuthResult{Token: token, User: view}, nil
}

func (c *authCommandsImpl) issueToken(ctx context.Context, userID uuid.UUID) (*AuthResult, error) {
	view, err := c.userReads.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := c.tokens.GenerateToken(view.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}
	return &AuthResult{Token: token, User: view}, nil
}
