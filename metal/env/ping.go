package env

import "strings"

type PingEnvironment struct {
	Username string `validate:"required,min=16"`
	Password string `validate:"required,min=16"`

	// KeepAliveCron is an optional cron expression for the background db
	// keep-alive job. Empty disables the scheduler.
	KeepAliveCron string `validate:"omitempty,min=6"`
}

func (p PingEnvironment) GetUsername() string {
	return p.Username
}

func (p PingEnvironment) GetPassword() string {
	return p.Password
}

func (p PingEnvironment) HasInvalidCreds(username, password string) bool {
	return username != strings.TrimSpace(p.Username) ||
		password != strings.TrimSpace(p.Password)
}

func (p PingEnvironment) HasKeepAlive() bool {
	return strings.TrimSpace(p.KeepAliveCron) != ""
}
