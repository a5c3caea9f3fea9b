package model

// Course 课程文档的已知字段，其余客户端字段原样保存在文档里
type Course struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	TeacherID   string `json:"teacher_id,omitempty"`
}

// CourseModule 课程模块，按 order 升序展示
type CourseModule struct {
	ID       string `json:"id,omitempty"`
	CourseID string `json:"course_id"`
	Title    string `json:"title,omitempty"`
	Order    int    `json:"order"`
}
