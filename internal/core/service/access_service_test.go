package service

import (
	"testing"

	"github.com/controlhs/datacore/internal/core/domain"
)

func TestEvaluate_LoadingDominates(t *testing.T) {
	svc := NewAccessService()

	state := domain.SessionState{
		Loading: true,
		User:    &domain.SessionUser{ID: "u1", Role: domain.RoleAdmin},
	}
	if got := svc.Evaluate(state); got != ShowLoading {
		t.Errorf("expected %s, got %s", ShowLoading, got)
	}
}

func TestEvaluate_NoUserDenied(t *testing.T) {
	svc := NewAccessService()

	if got := svc.Evaluate(domain.SessionState{}); got != ShowDenied {
		t.Errorf("expected %s, got %s", ShowDenied, got)
	}
}

func TestEvaluate_AdminSeesContent(t *testing.T) {
	svc := NewAccessService()

	state := domain.SessionState{User: &domain.SessionUser{ID: "u1", Role: domain.RoleAdmin}}
	if got := svc.Evaluate(state); got != ShowContent {
		t.Errorf("expected %s, got %s", ShowContent, got)
	}
}

func TestEvaluate_NonAdminRolesDenied(t *testing.T) {
	svc := NewAccessService()

	for _, role := range []domain.Role{domain.RoleUser, "editor", "manager", ""} {
		state := domain.SessionState{User: &domain.SessionUser{ID: "u1", Role: role}}
		if got := svc.Evaluate(state); got != ShowDenied {
			t.Errorf("role %q: expected %s, got %s", role, ShowDenied, got)
		}
	}
}
