package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Reason string `json:"reason"`
}

func getAllErrorMessages(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var builder strings.Builder
	for _, fe := range validationErrors {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	if fe.Tag() == "required_if" {
		return "this field is required when " + conditionText(fe.Param())
	}

	switch fe.Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64:
		return getMessageForInt(fe)
	case reflect.Slice, reflect.Map:
		return getMessageForCollection(fe)
	}

	return "incorrect value passed"
}

func getMessageForInt(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	case "gt":
		return "should be greater than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForCollection(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "should contain at least " + fe.Param() + " item(s)"
	case "max":
		return "should contain at most " + fe.Param() + " item(s)"
	}

	return "incorrect value passed"
}

// conditionText turns a "Field value Field value" param into readable text.
func conditionText(param string) string {
	parts := strings.Fields(param)
	conditions := make([]string, 0, len(parts)/2)
	for i := 0; i+1 < len(parts); i += 2 {
		conditions = append(conditions, parts[i]+" is "+parts[i+1])
	}

	return strings.Join(conditions, " and ")
}

// stringifyCell renders a JSON-decoded cell value the way it is shown in a
// spreadsheet.
func stringifyCell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
