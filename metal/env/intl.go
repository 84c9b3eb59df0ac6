package env

// IntlEnvironment drives the localisation of the home view model. The
// supported locale set is fixed at build time (the translation bundles are
// embedded); only the default is configurable.
type IntlEnvironment struct {
	DefaultLocale string `validate:"required,lowercase,oneof=es en"`
}

func (e IntlEnvironment) GetDefaultLocale() string {
	return e.DefaultLocale
}
