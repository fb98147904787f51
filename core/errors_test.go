package core

import (
	"errors"
	"testing"
)

func TestErrorCode(t *testing.T) {
	err := Error(EINVALID, "option %q out of range", "threshold")
	if Code(err) != EINVALID {
		t.Errorf("expected code EINVALID, got %d", Code(err))
	}
	if UserMessage(err) != `option "threshold" out of range` {
		t.Errorf("unexpected user message: %q", UserMessage(err))
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := LoadError(cause, "fonts/index.json")
	if Code(err) != ELOAD {
		t.Errorf("expected code ELOAD, got %d", Code(err))
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to match its cause")
	}
}

func TestErrorCodeOfPlainError(t *testing.T) {
	err := errors.New("quite unexpected")
	if Code(err) != EINTERNAL {
		t.Errorf("expected plain errors to map to EINTERNAL, got %d", Code(err))
	}
	if Code(nil) != NOERROR {
		t.Errorf("expected nil to map to NOERROR, got %d", Code(nil))
	}
}

func TestErrorChainKeepsOutermostCode(t *testing.T) {
	inner := LoadError(errors.New("no such file"), "A.png")
	outer := ComparisonError(inner, "A")
	if Code(outer) != ECOMPARE {
		t.Errorf("expected outermost code ECOMPARE, got %d", Code(outer))
	}
	if UserMessage(outer) != `cannot compare images for symbol "A"` {
		t.Errorf("unexpected user message: %q", UserMessage(outer))
	}
}

func TestSchemaError(t *testing.T) {
	err := SchemaError("index.json", "font index")
	if Code(err) != ESCHEMA {
		t.Errorf("expected code ESCHEMA, got %d", Code(err))
	}
}
