package service

import (
	"errors"
	"testing"

	"kampus_backend/internal/repository"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"
)

func newEnrollmentFixture() *EnrollmentService {
	return NewEnrollmentService(repository.NewEnrollmentRepository(docstore.NewMemoryStore()))
}

func TestEnroll(t *testing.T) {
	svc := newEnrollmentFixture()

	id, err := svc.Enroll("s1", "c1", 0)
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if id == "" {
		t.Fatal("Enroll returned empty id")
	}

	enrollments, err := svc.ListByStudent("s1")
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(enrollments) != 1 {
		t.Fatalf("len = %d, want 1", len(enrollments))
	}
	if enrollments[0].String("status") != "active" {
		t.Fatalf("status = %q, want active", enrollments[0].String("status"))
	}
	if enrollments[0].String("course_id") != "c1" {
		t.Fatalf("course_id = %q", enrollments[0].String("course_id"))
	}
}

func TestEnrollDuplicateConflict(t *testing.T) {
	svc := newEnrollmentFixture()

	if _, err := svc.Enroll("s1", "c1", 0); err != nil {
		t.Fatalf("first Enroll: %v", err)
	}
	if _, err := svc.Enroll("s1", "c1", 0); !errors.Is(err, util.ErrConflict) {
		t.Fatalf("duplicate Enroll err = %v, want ErrConflict", err)
	}

	// 其它组合不受影响
	if _, err := svc.Enroll("s1", "c2", 0); err != nil {
		t.Fatalf("Enroll other course: %v", err)
	}
	if _, err := svc.Enroll("s2", "c1", 0); err != nil {
		t.Fatalf("Enroll other student: %v", err)
	}
}

func TestEnrollValidation(t *testing.T) {
	svc := newEnrollmentFixture()

	if _, err := svc.Enroll("", "c1", 0); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("missing student err = %v, want ErrValidation", err)
	}
	if _, err := svc.Enroll("s1", "", 0); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("missing course err = %v, want ErrValidation", err)
	}
}

func TestUnenroll(t *testing.T) {
	svc := newEnrollmentFixture()

	id, _ := svc.Enroll("s1", "c1", 0)
	if err := svc.Unenroll(id); err != nil {
		t.Fatalf("Unenroll: %v", err)
	}

	enrollments, _ := svc.ListByStudent("s1")
	if len(enrollments) != 0 {
		t.Fatalf("enrollment still present: %v", enrollments)
	}

	// 重复选课限制随删除解除
	if _, err := svc.Enroll("s1", "c1", 0); err != nil {
		t.Fatalf("re-Enroll after Unenroll: %v", err)
	}

	if err := svc.Unenroll(""); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("empty id err = %v, want ErrValidation", err)
	}
}

func TestListByCourse(t *testing.T) {
	svc := newEnrollmentFixture()

	svc.Enroll("s1", "c1", 0)
	svc.Enroll("s2", "c1", 0)
	svc.Enroll("s1", "c2", 0)

	enrollments, err := svc.ListByCourse("c1")
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(enrollments) != 2 {
		t.Fatalf("len = %d, want 2", len(enrollments))
	}
}
