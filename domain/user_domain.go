package domain

import (
	"errors"
)

const (
	FieldEmail         = "email"
	FieldName          = "name"
	FieldPhone         = "phone"
	FieldPassword      = "password"
	FieldDietary       = "dietary"
	FieldNotifications = "notifications"
)

var (
	MessageSuccessRegister          = "Signup successful"
	MessageSuccessLogin             = "Login successful"
	MessageSuccessCreateGuest       = "guest account created"
	MessageSuccessGetProfile        = "profile retrieved successfully"
	MessageSuccessUpdateAccount     = "account setting updated"
	MessageSuccessUpdateFridgeModel = "Fridge model updated"

	MessageFailedRegister          = "failed to sign up"
	MessageFailedLogin             = "failed to login"
	MessageFailedCreateGuest       = "failed to create guest account"
	MessageFailedGetProfile        = "failed to get profile"
	MessageFailedUpdateAccount     = "server error while updating user data"
	MessageFailedUpdateFridgeModel = "server error while updating fridge data"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUnsupportedField       = errors.New("unsupported account setting field")
	ErrInvalidFieldValue      = errors.New("invalid value for account setting field")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Name     string `json:"name" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string      `json:"token"`
		User  UserSummary `json:"user"`
	}

	UserSummary struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	// AccountSettingRequest carries the raw value of one profile field; its
	// shape depends on the field being updated.
	AccountSettingRequest struct {
		Value any `json:"value" validate:"required"`
	}

	EmailValue struct {
		Value string `validate:"required,email"`
	}

	NameValue struct {
		Value string `validate:"required"`
	}

	PhoneValue struct {
		Value string `validate:"required,phone"`
	}

	PasswordValue struct {
		Value string `validate:"required,min=6"`
	}

	DietaryValue struct {
		DietType       string   `json:"dietType" validate:"required"`
		NutritionGoals string   `json:"nutritionGoals" validate:"required"`
		Allergies      []string `json:"allergies" validate:"required"`
	}

	NotificationsValue struct {
		Email *bool `json:"email" validate:"required"`
		App   *bool `json:"app" validate:"required"`
		SMS   *bool `json:"sms" validate:"required"`
	}

	FridgeModelRequest struct {
		Value FridgeModelValue `json:"value" validate:"required"`
	}

	FridgeModelValue struct {
		FridgeBrand string             `json:"fridgeBrand" validate:"required"`
		ModelName   string             `json:"modelName" validate:"required"`
		Features    FridgeFeatureValue `json:"Features"`
	}

	FridgeFeatureValue struct {
		Humidity           bool `json:"humidity"`
		FreezerCompartment bool `json:"freezerCompartment"`
		VegetableDrawer    bool `json:"vegetableDrawer"`
		IceMaker           bool `json:"iceMaker"`
		TouchscreenPanel   bool `json:"touchscreenPanel"`
	}

	ProfileResponse struct {
		ID            string             `json:"id"`
		Email         string             `json:"email"`
		Name          string             `json:"name"`
		Phone         string             `json:"phone"`
		IsGuest       bool               `json:"isGuest"`
		FridgeModel   FridgeModelValue   `json:"fridgeModel"`
		Dietary       DietaryValue       `json:"dietary"`
		Notifications NotificationsValue `json:"notifications"`
	}
)
