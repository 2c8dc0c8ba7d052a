package service

import (
	"errors"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrMemorableUnsupported = errors.New("memorable passwords are not implemented")
	ErrUnknownKind          = errors.New("unknown password type")
)

// DefaultLength is used when a request omits the length.
const DefaultLength = 10

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService backed by the OS CSPRNG.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: crypto.NewGenerator()}
}

// Generate produces a password and its strength for the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts, err := optionsFromRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: crypto.Strength(opts),
	}, nil
}

// Strength scores the request's rule set without generating a password.
// Unlike Generate, an empty rule set is a valid degenerate case here.
func (s *GeneratorService) Strength(req model.GenerateRequest) (model.StrengthResponse, error) {
	opts, err := optionsFromRequest(req)
	if err != nil {
		return model.StrengthResponse{}, err
	}
	if opts.Length < 0 || opts.Length > crypto.MaxLength {
		return model.StrengthResponse{}, crypto.ErrLengthOutOfRange
	}

	return model.StrengthResponse{
		Length:   opts.Length,
		Strength: crypto.Strength(opts),
	}, nil
}

// optionsFromRequest maps a request to generator options. Kind presets
// override the individual flags; without a kind, lowercase defaults on and
// the remaining classes default off, mirroring the CLI flag semantics.
func optionsFromRequest(req model.GenerateRequest) (crypto.Options, error) {
	length := DefaultLength
	if req.Length != nil {
		length = *req.Length
	}

	switch req.Kind {
	case "random":
		return crypto.Options{Length: length, Symbols: true, Digits: true, Uppercase: true, Lowercase: true}, nil
	case "pin":
		return crypto.Options{Length: length, Digits: true}, nil
	case "memorable":
		return crypto.Options{}, ErrMemorableUnsupported
	case "":
		return crypto.Options{
			Length:    length,
			Symbols:   boolOrDefault(req.Symbols, false),
			Digits:    boolOrDefault(req.Numbers, false),
			Uppercase: boolOrDefault(req.Uppercase, false),
			Lowercase: boolOrDefault(req.Lowercase, true),
		}, nil
	default:
		return crypto.Options{}, ErrUnknownKind
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
