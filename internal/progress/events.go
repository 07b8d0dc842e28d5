package progress

// CatchesSet is the Data of a telemetry.KindCatchesSet event.
type CatchesSet struct {
	// Length is the token count of the pattern the count was recorded for.
	Length   int `json:"length"`
	Previous int `json:"previous"`
	Catches  int `json:"catches"`
	// Family lists every key the write reached.
	Family []string `json:"family"`
	// NewlyCompleted is set when this write took the pattern over the threshold.
	NewlyCompleted bool `json:"newlyCompleted"`
	CompletedCount int  `json:"completedCount"`
}

// Imported is the Data of a telemetry.KindProgressImported event.
type Imported struct {
	Patterns  int `json:"patterns"`
	Completed int `json:"completed"`
	// Best is the highest catch count in the imported snapshot.
	Best int `json:"best"`
}
