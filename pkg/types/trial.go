package types

// TrialRequest is the lead captured by the free trial form.
type TrialRequest struct {
	Name  string `form:"name" json:"name"`
	Email string `form:"email" json:"email"`
	Phone string `form:"phone" json:"phone"`
	Goal  string `form:"goal" json:"goal"`
}

type SubmissionKind string

const (
	SubmissionNone    SubmissionKind = ""
	SubmissionSuccess SubmissionKind = "success"
	SubmissionFailure SubmissionKind = "failure"
)

// SubmissionStatus is the inline message shown under the trial form.
type SubmissionStatus struct {
	Kind    SubmissionKind `json:"kind"`
	Message string         `json:"message"`
}

func (s SubmissionStatus) OK() bool {
	return s.Kind == SubmissionSuccess
}

func (s SubmissionStatus) IsNone() bool {
	return s.Kind == SubmissionNone
}
