package model

// Teacher is an exam author identified by a unique login code.
// Teachers are provisioned at bootstrap or via the create-teacher CLI and are
// never mutated afterwards.
type Teacher struct {
	ID   int64  `json:"teacher_id"`
	Name string `json:"name"`
	Code string `json:"-"`
}

// TeacherLoginRequest is the payload for logging in with a teacher code.
type TeacherLoginRequest struct {
	Code string `json:"code" binding:"required"`
}
