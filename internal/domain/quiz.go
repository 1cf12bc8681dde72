package domain

// QuizQuestion is one static multiple-choice question in the learning
// module. The catalog is read-only reference data supplied at process start.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	LegalRef     string   `json:"legal_ref"`
}

// Validate checks that the question is answerable.
func (q QuizQuestion) Validate() error {
	const op = "quiz_question.validate"
	if q.Question == "" {
		return Invalid(op, "question is required")
	}
	if len(q.Options) < 2 {
		return Invalid(op, "at least two options are required")
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return Invalid(op, "correctIndex is out of range")
	}
	return nil
}
