package service

import (
	"errors"
	"testing"

	"kampus_backend/internal/model"
	"kampus_backend/internal/repository"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"
)

func newUserFixture() (*UserService, *docstore.MemoryStore) {
	store := docstore.NewMemoryStore()
	return NewUserService(repository.NewUserRepository(store)), store
}

func TestGetUserStats(t *testing.T) {
	svc, store := newUserFixture()

	store.Create(model.CollectionUsers, docstore.Document{"name": "a", "role": "student"})
	store.Create(model.CollectionUsers, docstore.Document{"name": "b", "role": "student"})
	store.Create(model.CollectionUsers, docstore.Document{"name": "c", "role": "teacher"})
	store.Create(model.CollectionUsers, docstore.Document{"name": "d", "role": "admin"})
	// 无角色按student计
	store.Create(model.CollectionUsers, docstore.Document{"name": "e"})

	stats, err := svc.GetUserStats()
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.Total != 5 || stats.Students != 3 || stats.Teachers != 1 || stats.Admins != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestUserNotFound(t *testing.T) {
	svc, _ := newUserFixture()

	if _, err := svc.GetUser("missing"); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("GetUser err = %v, want ErrNotFound", err)
	}
	if err := svc.UpdateUser("missing", docstore.Document{"name": "x"}); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("UpdateUser err = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteUser("missing"); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("DeleteUser err = %v, want ErrNotFound", err)
	}
}

func TestUpdateUserStripsID(t *testing.T) {
	svc, store := newUserFixture()

	id, _ := store.Create(model.CollectionUsers, docstore.Document{"name": "Ana", "role": "student"})

	err := svc.UpdateUser(id, docstore.Document{"id": "hijacked", "name": "Ana María"})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	user, _ := svc.GetUser(id)
	if user.String("name") != "Ana María" {
		t.Fatalf("name = %q", user.String("name"))
	}
	if user.String("id") != id {
		t.Fatalf("id overwritten: %q", user.String("id"))
	}
}
