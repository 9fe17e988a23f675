package service

import "errors"

var (
	// ErrNoAssessment is returned when plan generation is requested before
	// any screening has been recorded.
	ErrNoAssessment = errors.New("no assessment on record")

	// ErrEmptyDraft is returned when commit or swap is requested on a
	// session that holds no draft.
	ErrEmptyDraft = errors.New("no draft to act on")

	// ErrNoUsableActivities is returned when every record in a generator
	// response was dropped during validation.
	ErrNoUsableActivities = errors.New("response contained no usable activities")

	ErrInvalidAnswers   = errors.New("expected nine answers, each between 0 and 3")
	ErrInvalidMood      = errors.New("mood must be -1, 0 or 1")
	ErrInvalidSchedule  = errors.New("end must be after start")
	ErrInvalidSwapIndex = errors.New("no draft activity at that position")
)
