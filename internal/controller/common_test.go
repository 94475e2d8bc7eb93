package controller

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestGetAllErrorMessages(t *testing.T) {
	type input struct {
		Name    string   `validate:"required,max=5"`
		Limit   int64    `validate:"gte=1"`
		Columns []string `validate:"min=1"`
	}

	err := validator.New().Struct(input{Name: "too long"})
	assert.Equal(t,
		"'Name': length should be less or equal than 5\n"+
			"'Limit': should be greater or equal than 1\n"+
			"'Columns': should contain at least 1 item(s)\n",
		getAllErrorMessages(err))

	assert.Equal(t, "plain", getAllErrorMessages(errors.New("plain")))
}

func TestStringifyCell(t *testing.T) {
	assert.Equal(t, "", stringifyCell(nil))
	assert.Equal(t, "text", stringifyCell("text"))
	assert.Equal(t, "3", stringifyCell(float64(3)))
	assert.Equal(t, "2.5", stringifyCell(2.5))
	assert.Equal(t, "true", stringifyCell(true))
}

func TestGetAllErrorMessages_RequiredIf(t *testing.T) {
	type input struct {
		Type       string
		QuestionId *int64 `validate:"required_if=Type question"`
	}

	err := validator.New().Struct(input{Type: "question"})
	assert.Equal(t, "'QuestionId': this field is required when Type is question\n", getAllErrorMessages(err))

	assert.NoError(t, validator.New().Struct(input{Type: "vendor-stat"}))
}

func TestConditionText(t *testing.T) {
	assert.Equal(t, "Type is question", conditionText("Type question"))
	assert.Equal(t, "Type is question and Kind is bank", conditionText("Type question Kind bank"))
	assert.Equal(t, "", conditionText(""))
}
