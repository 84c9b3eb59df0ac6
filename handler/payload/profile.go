package payload

import (
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

// ProfileResponse is the wire envelope for GET /api/profile. The domain
// aggregate already carries its JSON contract, so it is embedded as-is.
type ProfileResponse struct {
	Data profile.Profile `json:"data"`
}

func GetProfileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{Data: *p}
}
