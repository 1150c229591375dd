package main

import (
	"context"
	"testing"
)

func TestRunRejectsUnknownStore(t *testing.T) {
	err := run(context.Background(), []string{"-store", "etcd"})
	if err == nil {
		t.Fatal("expected error for unknown store backend")
	}
}

func TestRunRejectsBadFlag(t *testing.T) {
	if err := run(context.Background(), []string{"-no-such-flag"}); err == nil {
		t.Fatal("expected flag parse error")
	}
}
