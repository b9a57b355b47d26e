package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "trustbites/internal/delivery/context"
	"trustbites/internal/domain/entity"
	domainerrors "trustbites/internal/domain/errors"
	"trustbites/internal/domain/repository"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"
	"trustbites/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	sessions repository.SessionManager
	hasher   service.PasswordHasher
	images   service.ImageProcessor
	feed     *feedRecorder
	validate *validator.Validate
	now      clock
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Sessions repository.SessionManager
	Hasher   service.PasswordHasher
	Images   service.ImageProcessor
	Metrics  service.Metrics
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		sessions: params.Sessions,
		hasher:   params.Hasher,
		images:   params.Images,
		feed:     &feedRecorder{metrics: params.Metrics, now: utcNow},
		validate: newValidator(),
		now:      utcNow,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account, signs it in and announces it in the feed.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	in := *input
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.City = strings.TrimSpace(in.City)
	in.FavoriteFood = strings.TrimSpace(in.FavoriteFood)
	in.Bio = strings.TrimSpace(in.Bio)

	if err := validateInput(srv.validate, &in); err != nil {
		return nil, err
	}
	if len(in.Password) > entity.MaxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at most %d bytes", entity.MaxPasswordBytes))
	}

	hash, err := srv.hasher.Hash(in.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	now := srv.now()
	account := &entity.Account{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		City:         in.City,
		FavoriteFood: in.FavoriteFood,
		Bio:          in.Bio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = inSession(ctx, srv.sessions, in.SessionID, func(scope repository.SessionScope) error {
		if err := scope.AccountRepo().Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrAccountExists) {
				return domainerrors.ErrAccountAlreadyExists.WrapMessage("failed to register account")
			}

			return errors.Wrap(err, "failed to create account")
		}

		session := scope.Session()
		session.SignIn(account)
		session.Profile = entity.Profile{DisplayName: account.FullName(), Bio: account.Bio}

		return srv.feed.record(ctx, scope.FeedRepo(), entity.FeedKindJoin, account.FullName()+" joined TrustBites.")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account registered", slog.String("email", account.Email))

	return account, nil
}

// Login signs in an existing account.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Account, error) {
	email := strings.TrimSpace(input.Email)

	var account *entity.Account
	err := inSession(ctx, srv.sessions, input.SessionID, func(scope repository.SessionScope) error {
		found, err := scope.AccountRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("failed to sign in")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if !srv.hasher.Check(input.Password, found.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		session := scope.Session()
		session.SignIn(found)
		if session.Profile.DisplayName == "" {
			session.Profile.DisplayName = found.FullName()
		}
		account = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Sign in rejected", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Account signed in", slog.String("email", account.Email))

	return account, nil
}

// UpdateProfile edits the signed-in account, re-keying it when the email changes.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	in := *input
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Bio = strings.TrimSpace(in.Bio)

	if err := validateInput(srv.validate, &in); err != nil {
		return nil, err
	}

	var account *entity.Account
	err := inSession(ctx, srv.sessions, in.SessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		session := scope.Session()
		oldEmail := session.Identity.Email

		found, err := scope.AccountRepo().FindByEmail(ctx, oldEmail)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("failed to load signed-in account")
			}

			return errors.Wrap(err, "failed to find account")
		}

		found.FirstName = in.FirstName
		found.LastName = in.LastName
		found.Email = in.Email
		found.Bio = in.Bio
		found.UpdatedAt = srv.now()

		if err := scope.AccountRepo().Rekey(ctx, oldEmail, found); err != nil {
			if errors.Is(err, repository.ErrAccountExists) {
				return domainerrors.ErrAccountAlreadyExists.WrapMessage("failed to change email")
			}

			return errors.Wrap(err, "failed to update account")
		}

		session.SignIn(found)
		session.Profile.DisplayName = found.FullName()
		session.Profile.Bio = found.Bio
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.String("email", account.Email))

	return account, nil
}

// SignOut clears identity and profile. It is idempotent.
func (srv *accountService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	return inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		scope.Session().SignOut()

		return nil
	})
}

// GetProfile returns the profile page of the signed-in account.
func (srv *accountService) GetProfile(ctx context.Context, sessionID uuid.UUID) (*usecase.ProfileOutput, error) {
	var output *usecase.ProfileOutput
	err := inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}

		var err error
		output, err = srv.profileOf(ctx, scope)

		return err
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UpdateAvatar re-encodes the upload and stores it on the profile.
func (srv *accountService) UpdateAvatar(ctx context.Context, sessionID uuid.UUID, upload []byte) (*usecase.ProfileOutput, error) {
	if err := srv.checkSignedIn(ctx, sessionID); err != nil {
		return nil, err
	}

	avatar, err := srv.images.Encode(upload)
	if err != nil {
		return nil, err
	}

	var output *usecase.ProfileOutput
	err = inSession(ctx, srv.sessions, sessionID, func(scope repository.SessionScope) error {
		if err := requireSignedIn(scope); err != nil {
			return err
		}
		scope.Session().Profile.Avatar = avatar

		var err error
		output, err = srv.profileOf(ctx, scope)

		return err
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func (srv *accountService) checkSignedIn(ctx context.Context, sessionID uuid.UUID) error {
	return inSession(ctx, srv.sessions, sessionID, requireSignedIn)
}

func (srv *accountService) profileOf(ctx context.Context, scope repository.SessionScope) (*usecase.ProfileOutput, error) {
	session := scope.Session()
	output := &usecase.ProfileOutput{
		Identity:    session.Identity,
		DisplayName: session.Profile.DisplayName,
		Bio:         session.Profile.Bio,
		Avatar:      session.Profile.Avatar,
	}

	account, err := scope.AccountRepo().FindByEmail(ctx, session.Identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return output, nil
		}

		return nil, errors.Wrap(err, "failed to find account")
	}
	output.City = account.City
	output.FavoriteFood = account.FavoriteFood

	return output, nil
}
