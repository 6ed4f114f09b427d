package service

import (
	"github.com/Sugatraj/password-generator/internal/crypto"
	"github.com/Sugatraj/password-generator/internal/model"
)

// GeneratorService handles stateless password generation.
type GeneratorService struct {
	src crypto.Source
}

// NewGeneratorService creates a new GeneratorService drawing from src.
func NewGeneratorService(src crypto.Source) *GeneratorService {
	return &GeneratorService{src: src}
}

// Generate produces a password based on the given request.
// Missing fields take the widget defaults and the length is clamped like the slider.
func (s *GeneratorService) Generate(req model.GenerateRequest) model.GenerateResponse {
	cfg := configFromRequest(crypto.DefaultConfig(), req.Length, req.IncludeDigits, req.IncludeSymbols)
	password := crypto.Generate(cfg, s.src)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}
}

// configFromRequest overlays the set fields on base and clamps the length.
func configFromRequest(base crypto.Config, length *int, digits, symbols *bool) crypto.Config {
	cfg := base
	if length != nil {
		cfg.Length = *length
	}
	cfg.IncludeDigits = boolOrDefault(digits, cfg.IncludeDigits)
	cfg.IncludeSymbols = boolOrDefault(symbols, cfg.IncludeSymbols)
	cfg.Length = crypto.ClampLength(cfg.Length)
	return cfg
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func toConfigResponse(cfg crypto.Config) model.ConfigResponse {
	return model.ConfigResponse{
		Length:         cfg.Length,
		IncludeDigits:  cfg.IncludeDigits,
		IncludeSymbols: cfg.IncludeSymbols,
	}
}
