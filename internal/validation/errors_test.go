package validation

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	ve := NewValidationError()
	if ve.Error() != "validation error" {
		t.Errorf("empty ValidationError.Error() = %q", ve.Error())
	}

	ve.AddRequiredError("task_name")
	if !strings.Contains(ve.Error(), "task_name") {
		t.Errorf("single error should mention the field: %q", ve.Error())
	}

	ve.AddInvalidValueError("priority", "Urgent", "unrecognized")
	if !strings.Contains(ve.Error(), "multiple validation errors") {
		t.Errorf("multiple errors should be joined: %q", ve.Error())
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Errorf("new ValidationError should have no errors")
	}

	ve.AddRequiredError("task_name")
	if !ve.HasErrors() {
		t.Errorf("ValidationError should report errors after AddRequiredError")
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task_name")
	ve.AddInvalidFormatError("due_date", "31/01/2024", "2006-01-02")
	ve.AddInvalidLengthError("task_name", "x", 1, 255)
	ve.AddInvalidValueError("priority", "Urgent", "unrecognized")
	ve.AddInvalidCharacterError("task_name", "a\nb")

	if len(ve.Errors) != 5 {
		t.Fatalf("expected 5 errors, got %d", len(ve.Errors))
	}

	types := []ValidationErrorType{
		ErrorTypeRequired,
		ErrorTypeInvalidFormat,
		ErrorTypeInvalidLength,
		ErrorTypeInvalidValue,
		ErrorTypeInvalidCharacter,
	}
	for i, expected := range types {
		if ve.Errors[i].Type != expected {
			t.Errorf("error %d type = %v, want %v", i, ve.Errors[i].Type, expected)
		}
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task_name")
	ve.AddInvalidLengthError("task_name", "x", 1, 255)
	ve.AddInvalidValueError("priority", "Urgent", "unrecognized")

	nameErrors := ve.GetFieldErrors("task_name")
	if len(nameErrors) != 2 {
		t.Errorf("expected 2 task_name errors, got %d", len(nameErrors))
	}

	if len(ve.GetFieldErrors("due_date")) != 0 {
		t.Errorf("expected no due_date errors")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if ve.GetUserFriendlyMessage() != "Input validation failed" {
		t.Errorf("empty message = %q", ve.GetUserFriendlyMessage())
	}

	ve.AddRequiredError("task_name")
	if ve.GetUserFriendlyMessage() != "task_name is required" {
		t.Errorf("single message = %q", ve.GetUserFriendlyMessage())
	}

	ve.AddInvalidValueError("priority", "Urgent", "unrecognized")
	msg := ve.GetUserFriendlyMessage()
	if !strings.Contains(msg, "Multiple validation errors occurred") {
		t.Errorf("multiple message = %q", msg)
	}
	if !strings.Contains(msg, "- task_name is required") {
		t.Errorf("message should list each error: %q", msg)
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	if !IsValidationError(ve) {
		t.Errorf("IsValidationError should be true for ValidationError")
	}
	if IsValidationError(nil) {
		t.Errorf("IsValidationError should be false for nil")
	}
}
