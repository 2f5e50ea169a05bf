package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestDocumentCRUD(t *testing.T) {
	db := setupTestDB(t)
	cases := NewCaseService(db, zap.NewNop())
	svc := NewDocumentService(db, zap.NewNop())
	ctx := context.Background()
	cl := seedClient(t, db)

	cs, err := cases.Create(ctx, CaseInput{ClientID: cl.ID, CaseName: "Doe v. Roe", Status: "open"})
	if err != nil {
		t.Fatalf("case: %v", err)
	}

	created, err := svc.Create(ctx, DocumentInput{CaseID: cs.ID, FilePath: "/files/exhibit-a.pdf"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CaseID != cs.ID {
		t.Fatalf("store-assigned fields missing: %+v", created)
	}
	if created.Description != nil {
		t.Fatalf("description should be nil: %v", *created.Description)
	}

	updated, err := svc.Update(ctx, created.ID, DocumentInput{
		CaseID: 999, FilePath: "/files/exhibit-b.pdf", Description: strPtr("revised"),
	})
	if err != nil || updated == nil {
		t.Fatalf("update: %+v err=%v", updated, err)
	}
	if updated.FilePath != "/files/exhibit-b.pdf" || updated.Description == nil {
		t.Fatalf("fields not overwritten: %+v", updated)
	}
	if updated.CaseID != cs.ID {
		t.Fatalf("case_id must not move between cases: %d", updated.CaseID)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := svc.Get(ctx, created.ID)
	if err != nil || gone != nil {
		t.Fatalf("expected absent after delete: %+v err=%v", gone, err)
	}
	if err := svc.Delete(ctx, 777); err != nil {
		t.Fatalf("delete of never-existing id: %v", err)
	}
}
