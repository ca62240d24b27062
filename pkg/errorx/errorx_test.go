package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(cause, CodeDBError, "query contacts")

	if !errors.Is(err, cause) {
		t.Fatal("wrapped error must match its cause with errors.Is")
	}
	if got := err.Error(); got != "query contacts: dial tcp: connection refused" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeContactNotExist, "x")); got != CodeContactNotExist {
		t.Fatalf("want %d, got %d", CodeContactNotExist, got)
	}
	// 非 CodeError 一律按服务繁忙处理
	if got := GetCode(errors.New("plain")); got != CodeServerBusy {
		t.Fatalf("want %d, got %d", CodeServerBusy, got)
	}
	// 多层包装后仍能取到最外层的码
	inner := New(CodeNotFound, "record not found")
	outer := fmt.Errorf("loading contact: %w", inner)
	if got := GetCode(outer); got != CodeNotFound {
		t.Fatalf("want %d through fmt wrapping, got %d", CodeNotFound, got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(CodeNotFound, "gone")) {
		t.Fatal("CodeNotFound must be detected")
	}
	if !IsNotFound(errors.New("record not found")) {
		t.Fatal("gorm's record-not-found message must be detected")
	}
	if IsNotFound(New(CodeDBError, "boom")) {
		t.Fatal("CodeDBError is not a not-found error")
	}
	if IsNotFound(nil) {
		t.Fatal("nil is not a not-found error")
	}
}
