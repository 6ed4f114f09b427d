package model

// ConfigResponse is the API representation of a generation config.
type ConfigResponse struct {
	Length         int  `json:"length"`
	IncludeDigits  bool `json:"include_digits"`
	IncludeSymbols bool `json:"include_symbols"`
}

// UpdateConfigRequest changes one or more controls of a widget session.
// Omitted fields keep their current value.
type UpdateConfigRequest struct {
	Length         *int  `json:"length"`
	IncludeDigits  *bool `json:"include_digits"`
	IncludeSymbols *bool `json:"include_symbols"`
}

// SessionResponse carries the state of a widget session.
type SessionResponse struct {
	Token       string         `json:"token,omitempty"`
	Config      ConfigResponse `json:"config"`
	Password    string         `json:"password"`
	Regenerated bool           `json:"regenerated"`
}

// CopyResponse carries the password handed to the client clipboard.
type CopyResponse struct {
	Password string `json:"password"`
}
