package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestUserCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, UserInput{Username: "jdoe", Password: "$2a$10$hash", Role: "attorney"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("store-assigned fields missing: %+v", created)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil || got == nil {
		t.Fatalf("get: %+v err=%v", got, err)
	}
	if got.Username != "jdoe" || got.Role != "attorney" || got.Password != "$2a$10$hash" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	updated, err := svc.Update(ctx, created.ID, UserInput{Username: "jdoe2", Password: "$2a$10$other", Role: "paralegal"})
	if err != nil || updated == nil {
		t.Fatalf("update: %+v err=%v", updated, err)
	}
	if updated.Username != "jdoe2" || updated.Role != "paralegal" || updated.Password != "$2a$10$other" {
		t.Fatalf("fields not overwritten: %+v", updated)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	gone, err := svc.Get(ctx, created.ID)
	if err != nil || gone != nil {
		t.Fatalf("expected absent after delete: %+v err=%v", gone, err)
	}
}

func TestUserDuplicateUsernameSurfacesStoreError(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, UserInput{Username: "jdoe", Password: "h", Role: "admin"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// 不做预检：冲突由唯一索引报错，原样上抛
	if _, err := svc.Create(ctx, UserInput{Username: "jdoe", Password: "h2", Role: "admin"}); err == nil {
		t.Fatal("expected unique constraint error for duplicate username")
	}
}

func TestUserUpdateAbsent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, zap.NewNop())

	got, err := svc.Update(context.Background(), 404, UserInput{Username: "x", Password: "x", Role: "x"})
	if err != nil {
		t.Fatalf("absent update must not error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected absent, got %+v", got)
	}
}
