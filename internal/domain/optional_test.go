package domain

import (
	"encoding/json"
	"testing"
)

func TestOptionalUnmarshalJSON(t *testing.T) {
	type payload struct {
		Title    Optional[string] `json:"title"`
		Urgent   Optional[bool]   `json:"urgent"`
		Assignee Optional[string] `json:"assignee"`
	}

	// Test absent fields keep the zero Optional
	var p payload
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Title.Set || p.Urgent.Set || p.Assignee.Set {
		t.Errorf("Expected absent fields to be unset, got %+v", p)
	}

	// Test explicit null
	p = payload{}
	if err := json.Unmarshal([]byte(`{"assignee": null}`), &p); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !p.Assignee.Set {
		t.Error("Expected assignee to be set")
	}
	if p.Assignee.Valid {
		t.Error("Expected null assignee to be invalid")
	}
	if p.Title.Set {
		t.Error("Expected absent title to remain unset")
	}

	// Test present values
	p = payload{}
	if err := json.Unmarshal([]byte(`{"title": "hello", "urgent": false}`), &p); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !p.Title.Set || !p.Title.Valid || p.Title.Value != "hello" {
		t.Errorf("Expected title to hold %q, got %+v", "hello", p.Title)
	}
	if !p.Urgent.Set || !p.Urgent.Valid || p.Urgent.Value != false {
		t.Errorf("Expected urgent to hold false, got %+v", p.Urgent)
	}

	// Test type mismatch surfaces an error
	p = payload{}
	if err := json.Unmarshal([]byte(`{"urgent": "yes"}`), &p); err == nil {
		t.Error("Expected an error decoding a string into Optional[bool]")
	}
}

func TestOptionalMarshalJSON(t *testing.T) {
	got, err := json.Marshal(NewOptional("hello"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(got) != `"hello"` {
		t.Errorf("Expected %q, got %q", `"hello"`, got)
	}

	got, err = json.Marshal(NullOptional[string]())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(got) != "null" {
		t.Errorf("Expected null, got %q", got)
	}

	got, err = json.Marshal(Optional[int]{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(got) != "null" {
		t.Errorf("Expected null for unset Optional, got %q", got)
	}
}

func TestOptionalOr(t *testing.T) {
	if got := NewOptional(7).Or(3); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
	if got := NullOptional[int]().Or(3); got != 3 {
		t.Errorf("Expected fallback 3, got %d", got)
	}
	if got := (Optional[int]{}).Or(3); got != 3 {
		t.Errorf("Expected fallback 3, got %d", got)
	}
}
