package handler

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	baseHttp "net/http"

	"github.com/AngeelRdz/resume-angeel-dev/handler/payload"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/endpoint"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

type ProfileHandler struct {
	useCase profile.GetProfile
}

func MakeProfileHandler(useCase profile.GetProfile) ProfileHandler {
	return ProfileHandler{useCase: useCase}
}

func (h ProfileHandler) Handle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	// The endpoint serves the single canonical profile; query parameters
	// are ignored. Filtering by user lives in the repository contract only.
	found, err := h.useCase.Execute(r.Context(), profile.GetProfileParams{})

	var notFound *profile.NotFoundError
	if errors.As(err, &notFound) {
		return endpoint.NotFound(notFound.Error())
	}

	if err != nil {
		return endpoint.LogInternalError("could not fetch the profile", err)
	}

	data := payload.GetProfileResponse(found)

	resp := endpoint.NewResponseFrom(etagSalt(data), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode profile response", err)
	}

	return nil
}

// etagSalt derives the cache validator from the response body itself, so a
// reseeded database invalidates stale client copies immediately.
func etagSalt(data any) string {
	body, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%x", sha256.Sum256(body))
}
