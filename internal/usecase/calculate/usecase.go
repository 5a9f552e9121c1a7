package calculate

import (
	"context"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
)

// UseCase runs the validate-then-calculate flow of the savings-runway
// engine. Both steps are pure, so the use case is safe for concurrent use.
type UseCase struct{}

// NewUseCase creates a new instance
func NewUseCase() *UseCase {
	return &UseCase{}
}

// Execute validates the parameters and, when they pass, derives the full
// calculation result. The context is accepted for interface symmetry with
// the other use cases; no I/O happens here.
func (uc *UseCase) Execute(_ context.Context, input Input) (*Output, error) {
	params := input.toParams()

	if validation := params.Validate(); !validation.IsValid {
		return &Output{
			Valid:            false,
			ValidationErrors: validation.Errors,
		}, nil
	}

	result := entity.Calculate(params)
	return &Output{
		Valid:  true,
		Result: &result,
	}, nil
}
