package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"chefbook/shared/base64"
	"chefbook/shared/constant"
	"chefbook/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = value.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = base64.GetContentType(value)
	}

	if contentType == "" {
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = int(value.Size)
	case string:
		fileSize = len(value)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

func registerLayoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		_, err := time.Parse(layout, field.Field().String())

		return err == nil
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	custom := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"isodate":     registerLayoutValidation(constant.DayFormat),
		"timeslot":    registerLayoutValidation(constant.TimeSlotFormat),
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes JSON from r into data and validates the result.
// Decoding problems are bad requests; rule violations are validation failures.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.Validation(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.Validation(message(err)) //nolint:wrapcheck
	}

	return nil
}
