package profile

import (
	"context"
	"errors"
	"testing"
)

type stubRepository struct {
	profile *Profile
	err     error
	calls   int
}

func (s *stubRepository) GetProfile(ctx context.Context, params GetProfileParams) (*Profile, error) {
	s.calls++

	return s.profile, s.err
}

func TestExecuteReturnsProfile(t *testing.T) {
	want := &Profile{
		PersonalInfo: PersonalInfo{FullName: "John Doe"},
	}

	uc := MakeGetProfile(&stubRepository{profile: want})

	got, err := uc.Execute(context.Background(), GetProfileParams{})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if got != want {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestExecuteTranslatesAbsenceIntoNotFound(t *testing.T) {
	uc := MakeGetProfile(&stubRepository{})

	_, err := uc.Execute(context.Background(), GetProfileParams{})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if notFound.UserID != "" {
		t.Fatalf("no user id was requested, got %q", notFound.UserID)
	}

	if got := notFound.Error(); got != "profile not found" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestExecuteNotFoundCarriesUserID(t *testing.T) {
	uc := MakeGetProfile(&stubRepository{})

	_, err := uc.Execute(context.Background(), GetProfileParams{UserID: "user-42"})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if notFound.UserID != "user-42" {
		t.Fatalf("expected user id to be carried, got %q", notFound.UserID)
	}

	if got := notFound.Error(); got != "profile not found for user user-42" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestExecuteNotFoundIsIdempotent(t *testing.T) {
	repo := &stubRepository{}
	uc := MakeGetProfile(repo)

	_, first := uc.Execute(context.Background(), GetProfileParams{UserID: "u1"})
	_, second := uc.Execute(context.Background(), GetProfileParams{UserID: "u1"})

	if first == nil || second == nil {
		t.Fatalf("expected both calls to fail")
	}

	if first.Error() != second.Error() {
		t.Fatalf("expected identical failures, got %q and %q", first, second)
	}

	if repo.calls != 2 {
		t.Fatalf("expected two repository lookups, got %d", repo.calls)
	}
}

func TestExecutePropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection refused")
	uc := MakeGetProfile(&stubRepository{err: boom})

	_, err := uc.Execute(context.Background(), GetProfileParams{})

	if !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate unmodified, got %v", err)
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		t.Fatalf("store errors must not be recovered as not-found")
	}
}
