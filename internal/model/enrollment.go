package model

// Enrollment 选课记录，(student_id, course_id) 至多一条
type Enrollment struct {
	ID        string `json:"id,omitempty"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	Progress  int    `json:"progress"`
	Status    string `json:"status"`
}

const EnrollmentStatusActive = "active"
