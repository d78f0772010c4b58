package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(ErrNotFound) {
		t.Error("Expected ErrNotFound to be a not found error")
	}

	if !IsNotFoundError(ErrTaskNotFound) {
		t.Error("Expected ErrTaskNotFound to be a not found error")
	}

	wrapped := fmt.Errorf("lookup failed: %w", ErrTaskNotFound)
	if !IsNotFoundError(wrapped) {
		t.Error("Expected wrapped ErrTaskNotFound to be a not found error")
	}

	if IsNotFoundError(ErrInvalidEntity) {
		t.Error("Expected ErrInvalidEntity not to be a not found error")
	}

	if IsNotFoundError(nil) {
		t.Error("Expected nil not to be a not found error")
	}
}

func TestStoreError(t *testing.T) {
	// Test message formatting with a wrapped error
	cause := errors.New("driver: bad connection")
	err := NewStoreError("task", "update", "failed to persist changes", cause)

	want := "update operation on task failed: failed to persist changes: driver: bad connection"
	if err.Error() != want {
		t.Errorf("Expected error message %q, got %q", want, err.Error())
	}

	// Test message formatting without a wrapped error
	bare := NewStoreError("task", "create", "failed to insert task", nil)
	want = "create operation on task failed: failed to insert task"
	if bare.Error() != want {
		t.Errorf("Expected error message %q, got %q", want, bare.Error())
	}

	// Test the wrapped chain stays matchable with errors.Is/errors.As
	constraint := fmt.Errorf("%w: check constraint violation", ErrInvalidEntity)
	err = NewStoreError("task", "update", "failed to persist changes", constraint)

	if !errors.Is(err, ErrInvalidEntity) {
		t.Error("Expected StoreError to unwrap to ErrInvalidEntity")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatal("Expected errors.As to find the StoreError")
	}
	if storeErr.Entity != "task" || storeErr.Operation != "update" {
		t.Errorf("Expected entity/operation task/update, got %s/%s",
			storeErr.Entity, storeErr.Operation)
	}

	// Not found wrapped inside a StoreError still reads as not found
	err = NewStoreError("task", "update", "row vanished", ErrTaskNotFound)
	if !IsNotFoundError(err) {
		t.Error("Expected StoreError wrapping ErrTaskNotFound to be a not found error")
	}
}
