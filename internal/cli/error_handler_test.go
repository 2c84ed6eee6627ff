package cli

import (
	stderrors "errors"
	"strings"
	"testing"

	"tasktrack/internal/errors"
	"tasktrack/internal/validation"
)

func TestErrorHandler_Handle_ValidationError(t *testing.T) {
	eh := NewErrorHandler()

	valErr := validation.NewValidationError()
	valErr.AddRequiredError("name")

	err := eh.Handle("add task", valErr)
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "failed to add task") {
		t.Errorf("Expected operation context in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("Expected field name in message, got %q", err.Error())
	}
}

func TestErrorHandler_Handle_AppError(t *testing.T) {
	eh := NewErrorHandler()

	err := eh.Handle("delete task", errors.NewNotFoundError("task", "7"))
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "task not found: 7") {
		t.Errorf("Expected user message, got %q", err.Error())
	}
}

func TestErrorHandler_Handle_UnknownError(t *testing.T) {
	eh := NewErrorHandler()

	cause := stderrors.New("something odd")
	err := eh.Handle("list tasks", cause)
	if !stderrors.Is(err, cause) {
		t.Error("Expected unknown errors to be wrapped, not replaced")
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	err := eh.HandleSimple(errors.NewPersistenceError("save tasks", stderrors.New("disk full")))
	if strings.Contains(err.Error(), "disk full") {
		t.Errorf("Expected user-facing message without internals, got %q", err.Error())
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	valErr := validation.NewValidationError()
	valErr.AddRequiredError("name")

	if !eh.IsValidationError(valErr) {
		t.Error("Expected validation error to be classified as such")
	}
	if !eh.IsNotFoundError(errors.NewNotFoundError("task", "1")) {
		t.Error("Expected not found classification")
	}
	if !eh.IsPersistenceError(errors.NewPersistenceError("save", nil)) {
		t.Error("Expected persistence classification")
	}
	if eh.IsNotFoundError(stderrors.New("plain")) {
		t.Error("Plain errors should not classify as not found")
	}
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	eh := NewErrorHandler()

	if code := eh.GetErrorCode(errors.NewNotFoundError("task", "1")); code != "NOT_FOUND" {
		t.Errorf("Expected NOT_FOUND, got %s", code)
	}
	if code := eh.GetErrorCode(stderrors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("Expected UNKNOWN_ERROR, got %s", code)
	}
}
