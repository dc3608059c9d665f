package utils

import (
	"testing"

	"Smart-Fridge-Backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestCustomValidations(t *testing.T) {
	InitValidator()

	valid := domain.AddItemRequest{Name: "Milk", Category: "Dairy", StorageLocation: "deli drawer"}
	assert.NoError(t, Validate.Struct(valid))

	badCategory := domain.AddItemRequest{Name: "Milk", Category: "snacks"}
	assert.Error(t, Validate.Struct(badCategory))

	badLocation := domain.AddItemRequest{Name: "Milk", Category: "dairy", StorageLocation: "garage"}
	assert.Error(t, Validate.Struct(badLocation))

	assert.NoError(t, Validate.Struct(domain.PhoneValue{Value: "555 123-4567"}))
	assert.Error(t, Validate.Struct(domain.PhoneValue{Value: "12"}))
}
