package model

// SubmissionInput is the parser's view of one message: one or more plot ids
// sharing a single coordinate pair and modifier set.
type SubmissionInput struct {
	UserID string
	Team   string
	IDs    []int64
	Lat    string
	Lng    string
	Trial  bool
	Road   bool
	Field  bool
}

// Submission is one accepted plot report. Lat/Lng keep the text the user
// submitted so exports reproduce the original input. Immutable once created.
type Submission struct {
	UserID string
	Team   string
	ID     int64
	Lat    string
	Lng    string
	Trial  bool
	Road   bool
	Field  bool
}

// Expand turns the input into one Submission per id.
func (in *SubmissionInput) Expand() []Submission {
	subs := make([]Submission, 0, len(in.IDs))
	for _, id := range in.IDs {
		subs = append(subs, Submission{
			UserID: in.UserID,
			Team:   in.Team,
			ID:     id,
			Lat:    in.Lat,
			Lng:    in.Lng,
			Trial:  in.Trial,
			Road:   in.Road,
			Field:  in.Field,
		})
	}
	return subs
}
