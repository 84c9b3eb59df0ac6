package env

type LogsEnvironment struct {
	Level      string `validate:"required,oneof=debug info warn error"`
	Dir        string `validate:"required,min=4"`
	DateFormat string `validate:"required,min=4"`
}

type SentryEnvironment struct {
	DSN string `validate:"required,url"`
	CSP string `validate:"omitempty,url"`
}
