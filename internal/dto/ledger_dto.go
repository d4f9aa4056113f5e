package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/zamantopups/Mobile-Accessories/internal/apperror"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// Validate runs go-playground/validator tags over req and converts any
// failure into an apperror.ValidationError with per-field tags.
func Validate(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		return apperror.NewFieldValidation(fields)
	}
	return nil
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddStockRequest struct {
	Code     string          `json:"code"     validate:"required"`
	Group    string          `json:"group"`
	Name     string          `json:"name"     validate:"required"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
	Rate     decimal.Decimal `json:"rate"     validate:"required,gt=0"`
}

type RecordSaleRequest struct {
	InventoryID string `json:"inventory_id" validate:"required,uuid"`
	Quantity    int    `json:"quantity"     validate:"required,min=1"`
}
