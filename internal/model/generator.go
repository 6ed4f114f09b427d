package model

// GenerateRequest represents a stateless password generation request.
// Pointer fields distinguish a missing value (widget default) from an explicit one.
type GenerateRequest struct {
	Length         *int  `json:"length"`
	IncludeDigits  *bool `json:"include_digits"`
	IncludeSymbols *bool `json:"include_symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
