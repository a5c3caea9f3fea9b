package repository

import (
	"testing"

	"kampus_backend/internal/model"
	"kampus_backend/pkg/docstore"
)

func TestSaveModuleProgressUpsertKeepsSingleRecord(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewProgressRepository(store)

	err := repo.SaveModuleProgress("u1", "c1", "m1", docstore.Document{"times_accessed": 1, "completed": false})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	first, err := repo.GetModuleProgress("u1", "c1", "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first == nil {
		t.Fatal("record not created")
	}
	if first.String("user_id") != "u1" || first.String("course_id") != "c1" || first.String("module_id") != "m1" {
		t.Fatalf("composite key not stamped: %v", first)
	}

	err = repo.SaveModuleProgress("u1", "c1", "m1", docstore.Document{"times_accessed": 2})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	all, _ := store.Query(model.CollectionUserProgress, nil)
	if len(all) != 1 {
		t.Fatalf("upsert duplicated the record: %d records", len(all))
	}

	second, _ := repo.GetModuleProgress("u1", "c1", "m1")
	if second.String("id") != first.String("id") {
		t.Fatal("storage id changed on upsert")
	}
	if second.Int("times_accessed") != 2 {
		t.Fatalf("times_accessed = %d, want 2", second.Int("times_accessed"))
	}
	// 合并更新，未提交的字段保留
	if !second.Has("completed") {
		t.Fatal("merge dropped existing field")
	}
}

func TestGetModuleProgressAbsentIsNil(t *testing.T) {
	repo := NewProgressRepository(docstore.NewMemoryStore())

	doc, err := repo.GetModuleProgress("u1", "c1", "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc != nil {
		t.Fatalf("want nil for absent record, got %v", doc)
	}
}

func TestSaveCourseProgressUpsert(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewProgressRepository(store)

	err := repo.SaveCourseProgress("u1", "c1", docstore.Document{"total_modules": 4, "completed_modules": 1, "progress_percentage": 25})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	err = repo.SaveCourseProgress("u1", "c1", docstore.Document{"total_modules": 4, "completed_modules": 2, "progress_percentage": 50})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	all, _ := store.Query(model.CollectionCourseProgress, nil)
	if len(all) != 1 {
		t.Fatalf("summary duplicated: %d records", len(all))
	}

	doc, _ := repo.GetCourseProgress("u1", "c1")
	if doc.Int("completed_modules") != 2 || doc.Int("progress_percentage") != 50 {
		t.Fatalf("summary not overwritten: %v", doc)
	}
	if doc.String("user_id") != "u1" || doc.String("course_id") != "c1" {
		t.Fatalf("key fields missing: %v", doc)
	}
}
