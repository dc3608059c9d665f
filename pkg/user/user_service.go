package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	GuestEmail    = "guest@email.com"
	GuestName     = "Guest User"
	guestPassword = "GuestPassword"
)

type (
	// GuestSeeder fills a fresh guest account with starter inventory.
	GuestSeeder interface {
		SeedGuestStarterItems(ctx context.Context, userID string) error
	}

	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		CreateGuest(ctx context.Context) (domain.AuthResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateAccountSetting(ctx context.Context, field string, req domain.AccountSettingRequest, userID string) (map[string]any, error)
		UpdateFridgeModel(ctx context.Context, req domain.FridgeModelRequest, userID string) (domain.FridgeModelValue, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		seeder         GuestSeeder
		validator      *validator.Validate
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, seeder GuestSeeder, validator *validator.Validate) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		seeder:         seeder,
		validator:      validator,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:          uuid.New(),
		Email:       email,
		Password:    hashed,
		Name:        strings.TrimSpace(req.Name),
		FridgeModel: entities.DefaultFridgeModel(),
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	return s.authResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.authResponse(user), nil
}

// CreateGuest returns a session for the shared guest account, creating it on
// first use, and resets its fridge to the guest starter inventory.
func (s *userService) CreateGuest(ctx context.Context) (domain.AuthResponse, error) {
	guest, err := s.userRepository.GetUserByEmail(ctx, GuestEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, err
		}

		hashed, err := hashPassword(guestPassword)
		if err != nil {
			return domain.AuthResponse{}, err
		}
		guest = &entities.User{
			ID:          uuid.New(),
			Email:       GuestEmail,
			Password:    hashed,
			Name:        GuestName,
			IsGuest:     true,
			FridgeModel: entities.DefaultFridgeModel(),
		}
		if err := s.userRepository.RegisterUser(ctx, guest); err != nil {
			return domain.AuthResponse{}, err
		}
		log.Infof("guest account %s created", guest.ID)
	}

	if s.seeder != nil {
		if err := s.seeder.SeedGuestStarterItems(ctx, guest.ID.String()); err != nil {
			return domain.AuthResponse{}, fmt.Errorf("seed guest starter items: %w", err)
		}
	}

	return s.authResponse(guest), nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(user), nil
}

func (s *userService) UpdateAccountSetting(ctx context.Context, field string, req domain.AccountSettingRequest, userID string) (map[string]any, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var result any
	switch field {
	case domain.FieldEmail:
		var v domain.EmailValue
		if err := s.decodeScalar(req.Value, &v.Value, &v); err != nil {
			return nil, err
		}
		email := normalizeEmail(v.Value)
		if email != user.Email {
			if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
				return nil, domain.ErrEmailAlreadyRegistered
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		user.Email = email
		result = email

	case domain.FieldName:
		var v domain.NameValue
		if err := s.decodeScalar(req.Value, &v.Value, &v); err != nil {
			return nil, err
		}
		user.Name = strings.TrimSpace(v.Value)
		result = user.Name

	case domain.FieldPhone:
		var v domain.PhoneValue
		if err := s.decodeScalar(req.Value, &v.Value, &v); err != nil {
			return nil, err
		}
		user.Phone = v.Value
		result = user.Phone

	case domain.FieldPassword:
		var v domain.PasswordValue
		if err := s.decodeScalar(req.Value, &v.Value, &v); err != nil {
			return nil, err
		}
		hashed, err := hashPassword(v.Value)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
		result = true

	case domain.FieldDietary:
		var v domain.DietaryValue
		if err := s.decodeObject(req.Value, &v); err != nil {
			return nil, err
		}
		user.Dietary = entities.DietaryPreference{
			DietType:       v.DietType,
			NutritionGoals: v.NutritionGoals,
			Allergies:      v.Allergies,
		}
		result = v

	case domain.FieldNotifications:
		var v domain.NotificationsValue
		if err := s.decodeObject(req.Value, &v); err != nil {
			return nil, err
		}
		user.Notifications = entities.NotificationPrefs{
			Email: *v.Email,
			App:   *v.App,
			SMS:   *v.SMS,
		}
		result = v

	default:
		return nil, domain.ErrUnsupportedField
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return map[string]any{field: result}, nil
}

func (s *userService) UpdateFridgeModel(ctx context.Context, req domain.FridgeModelRequest, userID string) (domain.FridgeModelValue, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return domain.FridgeModelValue{}, err
	}

	v := req.Value
	user.FridgeModel = entities.FridgeModel{
		FridgeBrand: v.FridgeBrand,
		ModelName:   v.ModelName,
		Features: entities.FridgeFeatures{
			Humidity:           v.Features.Humidity,
			FreezerCompartment: v.Features.FreezerCompartment,
			VegetableDrawer:    v.Features.VegetableDrawer,
			IceMaker:           v.Features.IceMaker,
			TouchscreenPanel:   v.Features.TouchscreenPanel,
		},
	}
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.FridgeModelValue{}, err
	}
	return toFridgeModelValue(user.FridgeModel), nil
}

func (s *userService) findUser(ctx context.Context, userID string) (*entities.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) authResponse(user *entities.User) domain.AuthResponse {
	role := domain.RoleUser
	if user.IsGuest {
		role = domain.RoleGuest
	}
	return domain.AuthResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), role),
		User: domain.UserSummary{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	}
}

// decodeScalar accepts a bare string value for single-valued fields.
func (s *userService) decodeScalar(raw any, dst *string, holder any) error {
	str, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w: expected a string", domain.ErrInvalidFieldValue)
	}
	*dst = strings.TrimSpace(str)
	return s.validate(holder)
}

func (s *userService) decodeObject(raw any, dst any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFieldValue, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFieldValue, err)
	}
	return s.validate(dst)
}

func (s *userService) validate(v any) error {
	if s.validator == nil {
		return nil
	}
	if err := s.validator.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFieldValue, err)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toFridgeModelValue(m entities.FridgeModel) domain.FridgeModelValue {
	return domain.FridgeModelValue{
		FridgeBrand: m.FridgeBrand,
		ModelName:   m.ModelName,
		Features: domain.FridgeFeatureValue{
			Humidity:           m.Features.Humidity,
			FreezerCompartment: m.Features.FreezerCompartment,
			VegetableDrawer:    m.Features.VegetableDrawer,
			IceMaker:           m.Features.IceMaker,
			TouchscreenPanel:   m.Features.TouchscreenPanel,
		},
	}
}

func toProfileResponse(user *entities.User) domain.ProfileResponse {
	email, app, sms := user.Notifications.Email, user.Notifications.App, user.Notifications.SMS
	allergies := user.Dietary.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	return domain.ProfileResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		Name:        user.Name,
		Phone:       user.Phone,
		IsGuest:     user.IsGuest,
		FridgeModel: toFridgeModelValue(user.FridgeModel),
		Dietary: domain.DietaryValue{
			DietType:       user.Dietary.DietType,
			NutritionGoals: user.Dietary.NutritionGoals,
			Allergies:      allergies,
		},
		Notifications: domain.NotificationsValue{
			Email: &email,
			App:   &app,
			SMS:   &sms,
		},
	}
}
