package handler

import (
	"errors"
	"fmt"
	baseHttp "net/http"

	"github.com/AngeelRdz/resume-angeel-dev/handler/payload"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/endpoint"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/i18n"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

// HomeHandler serves the localized home view model. Every supported locale
// bundle is loaded once at construction; a request only picks one of them.
type HomeHandler struct {
	useCase       profile.GetProfile
	translators   map[i18n.Locale]*i18n.Translator
	defaultLocale i18n.Locale
}

func MakeHomeHandler(useCase profile.GetProfile, defaultLocale string) (HomeHandler, error) {
	translators := make(map[i18n.Locale]*i18n.Translator, len(i18n.SupportedLocales()))

	for _, locale := range i18n.SupportedLocales() {
		translator, err := i18n.MakeTranslator(locale)
		if err != nil {
			return HomeHandler{}, fmt.Errorf("load translator for %q: %w", locale, err)
		}

		translators[locale] = translator
	}

	fallback := i18n.DefaultLocale
	if i18n.IsSupported(defaultLocale) {
		fallback = i18n.Locale(defaultLocale)
	}

	return HomeHandler{
		useCase:       useCase,
		translators:   translators,
		defaultLocale: fallback,
	}, nil
}

func (h HomeHandler) Handle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	locale := i18n.ResolveLocale(r.URL.Query().Get("lang"), h.defaultLocale)

	found, err := h.useCase.Execute(r.Context(), profile.GetProfileParams{})

	var notFound *profile.NotFoundError
	if errors.As(err, &notFound) {
		return endpoint.NotFound(notFound.Error())
	}

	if err != nil {
		return endpoint.LogInternalError("could not fetch the profile", err)
	}

	data := payload.BuildHomeResponse(found, h.translators[locale])

	resp := endpoint.NewResponseFrom(etagSalt(data), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode home response", err)
	}

	return nil
}
