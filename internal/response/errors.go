package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound           ErrCode = "NOT_FOUND"
	ErrInvalidTeacherCode ErrCode = "INVALID_TEACHER_CODE"
	ErrExamNotFound       ErrCode = "EXAM_NOT_FOUND"

	// ─── Submissions ───────────────────────────────────────────────────
	ErrUnknownExam         ErrCode = "UNKNOWN_EXAM"
	ErrQuestionNotInExam   ErrCode = "QUESTION_NOT_IN_EXAM"
	ErrChoiceNotInQuestion ErrCode = "CHOICE_NOT_IN_QUESTION"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "فشل التحقق. يرجى مراجعة الحقول المدخلة."
	case ErrInvalidID:
		return "صيغة المعرف غير صالحة."
	case ErrInvalidPayload:
		return "محتوى الطلب غير صالح."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "العنصر المطلوب غير موجود."
	case ErrInvalidTeacherCode:
		return "كود خاطئ"
	case ErrExamNotFound:
		return "الامتحان غير موجود."

	// ─── Submissions ───────────────────────────────────────────────────
	case ErrUnknownExam:
		return "لا يمكن تسليم إجابات لامتحان غير موجود."
	case ErrQuestionNotInExam:
		return "أحد الأسئلة لا ينتمي إلى هذا الامتحان."
	case ErrChoiceNotInQuestion:
		return "أحد الاختيارات لا ينتمي إلى السؤال المحدد."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "حدث خطأ داخلي في الخادم."
	default:
		return "حدث خطأ غير متوقع."
	}
}
