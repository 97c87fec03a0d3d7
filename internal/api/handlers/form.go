package handlers

import (
	"coldchain-dashboard/internal/api/dto"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	formDecoder = newFormDecoder()
	validate    = newValidator()

	// Valid floating-point number as submitted by <input type="number">.
	formNumberPattern = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)
)

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// newValidator reports fields under their form names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("schema")
	})
	if err := v.RegisterValidation("formnumber", isFormNumber); err != nil {
		panic(fmt.Sprintf("register formnumber validation: %v", err))
	}
	return v
}

// isFormNumber accepts what a browser number input submits: a finite decimal
// with optional leading dot and exponent.
func isFormNumber(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !formNumberPattern.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0)
}

// decodeDeliveryForm reads the posted create-delivery form. The returned form
// holds whatever was typed even when validation fails, so it can be shown again.
func decodeDeliveryForm(r *http.Request) (dto.DeliveryForm, error) {
	var form dto.DeliveryForm
	if err := r.ParseForm(); err != nil {
		return form, fmt.Errorf("parse form: %w", err)
	}
	if err := formDecoder.Decode(&form, r.PostForm); err != nil {
		return form, fmt.Errorf("decode form: %w", err)
	}
	form = trimForm(form)

	if err := validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return form, fmt.Errorf("must be numbers: %s", strings.Join(fields, ", "))
		}
		return form, err
	}
	return form, nil
}

func trimForm(f dto.DeliveryForm) dto.DeliveryForm {
	return dto.DeliveryForm{
		MinTemp:       strings.TrimSpace(f.MinTemp),
		MaxTemp:       strings.TrimSpace(f.MaxTemp),
		MinHumidity:   strings.TrimSpace(f.MinHumidity),
		MaxHumidity:   strings.TrimSpace(f.MaxHumidity),
		ProductPrice:  strings.TrimSpace(f.ProductPrice),
		DeliveryPrice: strings.TrimSpace(f.DeliveryPrice),
	}
}
