package repository

import (
	"errors"
	"testing"

	"kampus_backend/internal/model"
	"kampus_backend/pkg/docstore"
)

func TestModuleRepositoryListByCourseOrdered(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewModuleRepository(store)

	store.Create(model.CollectionCourseModules, docstore.Document{"course_id": "c1", "title": "intro", "order": 2})
	store.Create(model.CollectionCourseModules, docstore.Document{"course_id": "c1", "title": "setup", "order": 1})
	store.Create(model.CollectionCourseModules, docstore.Document{"course_id": "c2", "title": "other", "order": 1})

	modules, err := repo.ListByCourse("c1")
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("len = %d, want 2", len(modules))
	}
	if modules[0].String("title") != "setup" || modules[1].String("title") != "intro" {
		t.Fatalf("wrong order: %v", modules)
	}
}

func TestModuleRepositoryFallbackWhenOrderedQueryFails(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewModuleRepository(store)

	store.Create(model.CollectionCourseModules, docstore.Document{"course_id": "c1", "title": "b", "order": 5})
	store.Create(model.CollectionCourseModules, docstore.Document{"course_id": "c1", "title": "a", "order": 3})
	// order 缺失按 0 排在最前
	store.Create(model.CollectionCourseModules, docstore.Document{"course_id": "c1", "title": "legacy"})

	store.OrderedErr = errors.New("missing index")

	modules, err := repo.ListByCourse("c1")
	if err != nil {
		t.Fatalf("ListByCourse with fallback: %v", err)
	}
	if len(modules) != 3 {
		t.Fatalf("len = %d, want 3", len(modules))
	}
	for i, want := range []string{"legacy", "a", "b"} {
		if modules[i].String("title") != want {
			t.Fatalf("modules[%d] = %q, want %q", i, modules[i].String("title"), want)
		}
	}
}
