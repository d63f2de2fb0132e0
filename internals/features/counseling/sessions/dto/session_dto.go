package dto

import "guidanceku_backend/internals/features/counseling/sessions/model"

// EndSessionInput carries the closing details. Every field may be blank; a
// blank field never overwrites what was already stored on the session.
type EndSessionInput struct {
	ProblemStatement string `json:"problem_statement"`
	Recommendations  string `json:"recommendations"`
	SessionNotes     string `json:"session_notes"`
	ActionItems      string `json:"action_items"`
	NextSteps        string `json:"next_steps"`
}

func (in *EndSessionInput) Outcome() model.Outcome {
	return model.Outcome{
		ProblemStatement: in.ProblemStatement,
		Recommendations:  in.Recommendations,
		Notes:            in.SessionNotes,
		ActionItems:      in.ActionItems,
		NextSteps:        in.NextSteps,
	}
}
