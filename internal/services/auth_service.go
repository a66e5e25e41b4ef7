package services

import (
	"context"
	"errors"
	"fmt"

	"voyago/internal/models"
	"voyago/internal/repositories/interfaces"
	"voyago/internal/utils"
	"voyago/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error)

	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	AddVehicle(ctx context.Context, userID primitive.ObjectID, category VehicleCategory, vehicle models.Vehicle) (*models.User, error)
	RemoveVehicle(ctx context.Context, userID primitive.ObjectID, category VehicleCategory, vehicleID string) (*models.User, error)
	ReplaceVehicles(ctx context.Context, userID primitive.ObjectID, twoWheelers, fourWheelers []models.Vehicle) (*models.User, error)
}

// VehicleCategory selects which of the user's two vehicle lists to touch.
type VehicleCategory string

const (
	VehicleCategoryTwoWheeler  VehicleCategory = "two_wheeler"
	VehicleCategoryFourWheeler VehicleCategory = "four_wheeler"
)

func (c VehicleCategory) IsValid() bool {
	return c == VehicleCategoryTwoWheeler || c == VehicleCategoryFourWheeler
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,strong_password"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User   *models.User     `json:"user"`
	Tokens *utils.TokenPair `json:"tokens"`
}

type authService struct {
	userRepo  interfaces.UserRepository
	jwtSecret string
	logger    *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, jwtSecret string, log *logger.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	existing, err := s.userRepo.GetByPhone(ctx, req.Phone)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Password:     string(hashed),
		TwoWheelers:  []models.Vehicle{},
		FourWheelers: []models.Vehicle{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := utils.GenerateTokenPair(user.ID, user.Phone, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.logger.LogUserAction(user.ID, "register", map[string]interface{}{
		"phone": user.Phone,
	})

	return &AuthResponse{User: user.Sanitized(), Tokens: tokens}, nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := utils.GenerateTokenPair(user.ID, user.Phone, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.logger.LogUserAction(user.ID, "login", nil)

	return &AuthResponse{User: user.Sanitized(), Tokens: tokens}, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	tokens, err := utils.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return tokens, nil
}

func (s *authService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *authService) AddVehicle(ctx context.Context, userID primitive.ObjectID, category VehicleCategory, vehicle models.Vehicle) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if vehicle.ID == "" {
		vehicle.ID = utils.GenerateVehicleID()
	}

	switch category {
	case VehicleCategoryTwoWheeler:
		if models.HasVehicleID(user.TwoWheelers, vehicle.ID) {
			return nil, ErrVehicleExists
		}
		user.TwoWheelers = append(user.TwoWheelers, vehicle)
	case VehicleCategoryFourWheeler:
		if models.HasVehicleID(user.FourWheelers, vehicle.ID) {
			return nil, ErrVehicleExists
		}
		user.FourWheelers = append(user.FourWheelers, vehicle)
	default:
		return nil, fmt.Errorf("unknown vehicle category %q", category)
	}

	if err := s.persistVehicles(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *authService) RemoveVehicle(ctx context.Context, userID primitive.ObjectID, category VehicleCategory, vehicleID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	removed := false
	filter := func(vehicles []models.Vehicle) []models.Vehicle {
		out := vehicles[:0]
		for _, v := range vehicles {
			if v.ID == vehicleID {
				removed = true
				continue
			}
			out = append(out, v)
		}
		return out
	}

	switch category {
	case VehicleCategoryTwoWheeler:
		user.TwoWheelers = filter(user.TwoWheelers)
	case VehicleCategoryFourWheeler:
		user.FourWheelers = filter(user.FourWheelers)
	default:
		return nil, fmt.Errorf("unknown vehicle category %q", category)
	}

	if !removed {
		return nil, ErrVehicleNotFound
	}

	if err := s.persistVehicles(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *authService) ReplaceVehicles(ctx context.Context, userID primitive.ObjectID, twoWheelers, fourWheelers []models.Vehicle) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i, v := range twoWheelers {
		if v.ID == "" {
			twoWheelers[i].ID = utils.GenerateVehicleID()
		}
	}
	for i, v := range fourWheelers {
		if v.ID == "" {
			fourWheelers[i].ID = utils.GenerateVehicleID()
		}
	}

	user.TwoWheelers = twoWheelers
	user.FourWheelers = fourWheelers

	if err := s.persistVehicles(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *authService) persistVehicles(ctx context.Context, user *models.User) error {
	return s.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"two_wheelers":  user.TwoWheelers,
		"four_wheelers": user.FourWheelers,
	})
}
