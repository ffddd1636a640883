package model

// Student is identified by the (name, class) pair. Students are created
// lazily the first time that pair submits answers.
type Student struct {
	ID    int64  `json:"student_id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}
