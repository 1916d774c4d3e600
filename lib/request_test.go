package lib

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type quantityProbe struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

func TestValidateStruct(t *testing.T) {
	if err := ValidateStruct(quantityProbe{Name: "Taro Milk Tea", Quantity: 2}); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}

	err := ValidateStruct(quantityProbe{Name: "Taro Milk Tea"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExtractAndValidateBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Matcha Latte","quantity":1}`))
	body, err := ExtractAndValidateBody[quantityProbe](r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Name != "Matcha Latte" || body.Quantity != 1 {
		t.Errorf("decoded %+v", body)
	}
}

func TestExtractAndValidateBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Matcha Latte","quantity":1,"extra":true}`))
	if _, err := ExtractAndValidateBody[quantityProbe](r); err == nil {
		t.Fatal("expected unknown-field error")
	}
}

func TestMapStoreError(t *testing.T) {
	if got := MapStoreError(nil); got != nil {
		t.Errorf("MapStoreError(nil) = %v", got)
	}

	unique := errEsque("constraint failed: UNIQUE constraint failed: orders.order_id (1555)")
	if got := MapStoreError(unique); got != ErrConflict {
		t.Errorf("unique violation mapped to %v, want ErrConflict", got)
	}

	noRows := errEsque("sql: no rows in result set")
	if got := MapStoreError(noRows); got != ErrNotFound {
		t.Errorf("no-rows mapped to %v, want ErrNotFound", got)
	}

	other := errEsque("disk I/O error")
	if got := MapStoreError(other); got != other {
		t.Errorf("unrelated error rewritten to %v", got)
	}
}

type errEsque string

func (e errEsque) Error() string { return string(e) }
