package usecase

import "context"

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute returns one page of leads, newest first. An empty page is a valid
// result, not an error; classification and masking are applied by the
// presentation layer, never here.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	leads, total, err := uc.Repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to list leads: " + err.Error(),
		}
	}

	return &ListLeadsOutput{
		Leads:   leads,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}
