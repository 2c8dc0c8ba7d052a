package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish missing values (nil -> service default) from
// an explicit zero or false.
type GenerateRequest struct {
	Length    *int   `json:"length"`
	Uppercase *bool  `json:"uppercase"`
	Lowercase *bool  `json:"lowercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
	Kind      string `json:"type,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string  `json:"password"`
	Length   int     `json:"length"`
	Strength float64 `json:"strength"`
}

// StrengthResponse represents a strength estimate for a rule set without
// a generated password.
type StrengthResponse struct {
	Length   int     `json:"length"`
	Strength float64 `json:"strength"`
}
