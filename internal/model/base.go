package model

import (
	"encoding/json"

	"kampus_backend/pkg/docstore"
)

// 集合名沿用线上Firestore的命名
const (
	CollectionCourses        = "courses"
	CollectionCourseModules  = "course_modules"
	CollectionUsers          = "users"
	CollectionAssignments    = "assignments"
	CollectionEnrollments    = "enrollments"
	CollectionUserProgress   = "user_progress"
	CollectionCourseProgress = "course_progress"
)

// FromDocument 文档转结构体。经过一次JSON往返，兼容存储层还原出的float64数字
func FromDocument(doc docstore.Document, out any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// ToDocument 结构体转文档
func ToDocument(in any) (docstore.Document, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var doc docstore.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
