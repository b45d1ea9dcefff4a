package types

// PredictRequest is the raw /predict body. Rank is untyped because clients
// send it as either a number or a string; pointer fields let the engine
// distinguish absent/null from empty.
type PredictRequest struct {
	Rank          interface{} `json:"rank"`
	Category      *string     `json:"category"`
	Course        string      `json:"course"`
	RoundName     *string     `json:"round_name"`
	IncludeNearby bool        `json:"include_nearby"`
	Institute     string      `json:"institute"`
}
