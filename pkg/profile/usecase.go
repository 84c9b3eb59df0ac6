package profile

import (
	"context"
	"fmt"
)

// NotFoundError is raised when the store holds no matching user row. It is
// the single translation point between absence (a valid repository result)
// and error (a broken deployment from the caller's perspective).
type NotFoundError struct {
	UserID string
}

func (e *NotFoundError) Error() string {
	if e.UserID == "" {
		return "profile not found"
	}

	return fmt.Sprintf("profile not found for user %s", e.UserID)
}

// GetProfile orchestrates the repository lookup and enforces the
// "profile must exist" invariant. It adds no resilience semantics: store
// errors propagate unmodified and no retry is attempted.
type GetProfile struct {
	Repository Repository
}

func MakeGetProfile(repository Repository) GetProfile {
	return GetProfile{Repository: repository}
}

func (uc GetProfile) Execute(ctx context.Context, params GetProfileParams) (*Profile, error) {
	found, err := uc.Repository.GetProfile(ctx, params)

	if err != nil {
		return nil, err
	}

	if found == nil {
		return nil, &NotFoundError{UserID: params.UserID}
	}

	return found, nil
}
