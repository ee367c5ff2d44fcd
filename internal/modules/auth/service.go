package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"orderdesk/internal/domain"
	"orderdesk/internal/pkg/sms"
	"orderdesk/internal/pkg/verification"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for signup, 2FA verification, login
// and password reset.
type Service struct {
	users UserRepositoryInterface
	codes verification.Store
	sms   sms.Sender
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, codes verification.Store, sender sms.Sender, jwt jwtService) *Service {
	return &Service{
		users: users,
		codes: codes,
		sms:   sender,
		jwt:   jwt,
	}
}

type SignUpResult struct {
	UserID int64
	Code   string
}

type SessionResult struct {
	User  *domain.User
	Token string
}

// SignUp creates a client identity and sends a verification code to its
// phone. The login handle is the phone number. If the code cannot be
// delivered the identity is rolled back: an account that can never verify
// must not exist.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResult, error) {
	handle := strings.TrimSpace(req.PhoneNumber)

	exists, err := s.users.ExistsByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPhoneAlreadyRegistered
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:      req.FullName,
		Handle:        handle,
		PasswordHash:  hash,
		PhoneNumber:   handle,
		Role:          domain.RoleClient,
		ClientGroupID: req.ClientID,
		Active:        true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// unique index fired between the existence check and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneAlreadyRegistered
		}
		return nil, err
	}

	code, err := verification.GenerateCode()
	if err != nil {
		s.rollbackSignUp(ctx, user.ID)
		return nil, err
	}
	if err := s.codes.Put(ctx, user.ID, code); err != nil {
		s.rollbackSignUp(ctx, user.ID)
		return nil, err
	}

	if err := s.sms.SendVerificationCode(handle, code); err != nil {
		log.Printf("signup_sms_failed user_id=%d error=%q", user.ID, err)
		s.rollbackSignUp(ctx, user.ID)
		return nil, ErrCodeDelivery
	}

	return &SignUpResult{UserID: user.ID, Code: code}, nil
}

func (s *Service) rollbackSignUp(ctx context.Context, userID int64) {
	if err := s.users.Delete(ctx, userID); err != nil {
		log.Printf("signup_rollback_failed user_id=%d error=%q", userID, err)
	}
	_ = s.codes.Remove(ctx, userID)
}

// Verify consumes the verification code and issues a session token. The code
// is single use: a second call with the same code fails.
func (s *Service) Verify(ctx context.Context, userID int64, code string) (*SessionResult, error) {
	ok, err := s.codes.Validate(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCode
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Handle, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &SessionResult{User: user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResult, error) {
	user, err := s.users.GetByHandle(ctx, strings.TrimSpace(req.Handle))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Handle, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &SessionResult{User: user, Token: token}, nil
}

// ForgotPassword stores a fresh reset code for the identity and delivers it
// over SMS.
func (s *Service) ForgotPassword(ctx context.Context, handle string) error {
	user, err := s.users.GetByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := verification.GenerateCode()
	if err != nil {
		return err
	}
	if err := s.codes.Put(ctx, user.ID, code); err != nil {
		return err
	}

	if err := s.sms.SendVerificationCode(user.Handle, code); err != nil {
		log.Printf("reset_sms_failed user_id=%d error=%q", user.ID, err)
		return ErrCodeDelivery
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	user, err := s.users.GetByHandle(ctx, strings.TrimSpace(req.Handle))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	ok, err := s.codes.Validate(ctx, user.ID, req.Code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.users.UpdateFields(ctx, user.ID, map[string]any{
		"password_hash":        hash,
		"must_change_password": false,
	})
}

// UpdateProfile lets a client change their display name and login handle.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	fields := map[string]any{}
	if req.FullName != "" {
		fields["full_name"] = req.FullName
		user.FullName = req.FullName
	}
	if h := strings.TrimSpace(req.Handle); h != "" && h != user.Handle {
		taken, err := s.users.ExistsByHandle(ctx, h)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneAlreadyRegistered
		}
		fields["handle"] = h
		user.Handle = h
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}

	user.PasswordHash = ""
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
