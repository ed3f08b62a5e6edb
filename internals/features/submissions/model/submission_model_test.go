// file: internals/features/submissions/model/submission_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to SubmissionStatus
		want     bool
	}{
		{SubmissionStatusDraft, SubmissionStatusSubmitted, true},
		{SubmissionStatusDraft, SubmissionStatusDraft, true},
		{SubmissionStatusSubmitted, SubmissionStatusSubmitted, true}, // resubmission
		{SubmissionStatusSubmitted, SubmissionStatusDraft, false},   // never backwards
		{SubmissionStatusEvaluated, SubmissionStatusSubmitted, false},
		{SubmissionStatusEvaluated, SubmissionStatusEvaluated, false}, // derived, not stored
		{SubmissionStatusDraft, SubmissionStatusEvaluated, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestEffectiveStatus(t *testing.T) {
	assert.Equal(t, SubmissionStatusDraft, EffectiveStatus(SubmissionStatusDraft, false))
	assert.Equal(t, SubmissionStatusSubmitted, EffectiveStatus(SubmissionStatusSubmitted, false))
	// the moment an evaluation exists, the reported status flips, no second write
	assert.Equal(t, SubmissionStatusEvaluated, EffectiveStatus(SubmissionStatusSubmitted, true))
	assert.Equal(t, SubmissionStatusEvaluated, EffectiveStatus(SubmissionStatusDraft, true))
}
