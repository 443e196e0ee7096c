package service

import "github.com/controlhs/datacore/internal/core/domain"

type AccessOutcome string

const (
	ShowLoading AccessOutcome = "loading"
	ShowDenied  AccessOutcome = "denied"
	ShowContent AccessOutcome = "content"
)

type AccessService struct{}

func NewAccessService() *AccessService {
	return &AccessService{}
}

// Evaluate decides the render outcome for a protected view. Loading
// takes precedence over everything else; any role other than admin,
// including unknown roles, is denied the same way as no user at all.
func (s *AccessService) Evaluate(state domain.SessionState) AccessOutcome {
	if state.Loading {
		return ShowLoading
	}
	if state.User == nil || state.User.Role != domain.RoleAdmin {
		return ShowDenied
	}
	return ShowContent
}
