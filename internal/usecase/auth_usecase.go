package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/yohanvishvajith/sintravels-sub000/internal/auth"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"github.com/yohanvishvajith/sintravels-sub000/internal/repository"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

// ErrInvalidCredentials covers both unknown-user and wrong-password so
// login failures cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("Invalid credentials")

type AuthUsecase struct {
	userRepo *repository.UserRepository
}

func NewAuthUsecase(userRepo *repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo}
}

// Login checks credentials and issues a signed token.
func (uc *AuthUsecase) Login(username, password string) (*model.User, string, error) {
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil || !auth.CheckPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := auth.CreateToken(auth.TokenPayload{
		UserID:     user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		ProfileImg: user.ProfilePhoto,
	})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Address         string
	ProfilePhoto    string
}

func (uc *AuthUsecase) Register(in RegisterInput) (*model.User, error) {
	for _, f := range []struct{ name, value string }{
		{"username", in.Username},
		{"email", in.Email},
		{"password", in.Password},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, util.MissingField(f.name)
		}
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return nil, util.NewValidationError("confirmPassword", "passwords do not match")
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		Password:     hash,
		Role:         model.RoleUser,
		Address:      in.Address,
		ProfilePhoto: in.ProfilePhoto,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUsecase) Me(userID string) (*model.User, error) {
	return uc.userRepo.FindByID(userID)
}

func (uc *AuthUsecase) Users() ([]model.User, error) {
	return uc.userRepo.List()
}
