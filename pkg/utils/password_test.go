package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("hunter2")
	if h == "" || h == "hunter2" {
		t.Fatalf("hash looks wrong: %q", h)
	}
	if !CheckPassword("hunter2", h) {
		t.Fatal("valid password rejected")
	}
	if CheckPassword("wrong", h) {
		t.Fatal("invalid password accepted")
	}
	// 同一口令两次哈希不应相同（随机盐）
	if HashPassword("hunter2") == h {
		t.Fatal("expected salted hashes to differ")
	}
}
