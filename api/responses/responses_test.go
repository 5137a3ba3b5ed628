package responses

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
)

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"id": "abc"})

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", body["data"])
	}
	if data["id"] != "abc" {
		t.Fatalf("unexpected data %v", data)
	}
	if _, present := body["message"]; present {
		t.Fatal("empty message should be omitted")
	}
}

func TestWritePageIncludesMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	WritePage(rec, []string{"a"}, map[string]any{"total": 1})

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	meta, ok := body["meta"].(map[string]any)
	if !ok {
		t.Fatalf("expected meta object, got %T", body["meta"])
	}
	if meta["total"] != float64(1) {
		t.Fatalf("unexpected meta %v", meta)
	}
}

func TestWriteErrorUsesTypedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Order not found" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeInternal, "pq: connection refused")
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != 500 {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "an unexpected error occurred" {
		t.Fatalf("internal detail leaked: %v", body["error"])
	}
}

func TestWriteErrorValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]string{"amount": "is required"})
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	errs, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("expected errors map, got %T", body["errors"])
	}
	if errs["amount"] != "is required" {
		t.Fatalf("unexpected errors %v", errs)
	}
}
