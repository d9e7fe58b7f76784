package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/astralhpi/ticktick-mcp/internal/environ"
)

// Environment variable names holding the TickTick credentials.
const (
	EnvClientID     = "TICKTICK_CLIENT_ID"
	EnvClientSecret = "TICKTICK_CLIENT_SECRET" // #nosec G101 -- environment variable name
	EnvRedirectURI  = "TICKTICK_REDIRECT_URI"
	EnvUsername     = "TICKTICK_USERNAME"
	EnvPassword     = "TICKTICK_PASSWORD" // #nosec G101 -- environment variable name
)

// CredentialVars lists the credential variable names in a stable order.
var CredentialVars = []string{EnvClientID, EnvClientSecret, EnvRedirectURI, EnvUsername, EnvPassword}

// Value is an environment value that is either present or absent. A
// variable set to the empty string is present.
type Value struct {
	value string
	set   bool
}

// Present returns a Value holding s.
func Present(s string) Value {
	return Value{value: s, set: true}
}

// Get returns the value and whether it was set.
func (v Value) Get() (string, bool) {
	return v.value, v.set
}

// IsSet reports whether the variable was present.
func (v Value) IsSet() bool {
	return v.set
}

// Or returns the value, or fallback when absent.
func (v Value) Or(fallback string) string {
	if !v.set {
		return fallback
	}
	return v.value
}

// Credentials holds the named values consumed by the TickTick client.
// Nothing here is validated; consumers decide what is required.
type Credentials struct {
	ClientID     Value
	ClientSecret Value
	RedirectURI  Value
	Username     Value
	Password     Value
}

// ReadCredentials looks up the credential variables in env.
func ReadCredentials(env environ.Environment) Credentials {
	lookup := func(key string) Value {
		if v, ok := env.Lookup(key); ok {
			return Present(v)
		}
		return Value{}
	}

	return Credentials{
		ClientID:     lookup(EnvClientID),
		ClientSecret: lookup(EnvClientSecret),
		RedirectURI:  lookup(EnvRedirectURI),
		Username:     lookup(EnvUsername),
		Password:     lookup(EnvPassword),
	}
}

// MarshalLogObject logs which credentials are present. Values are never logged.
func (c Credentials) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("client_id", c.ClientID.IsSet())
	enc.AddBool("client_secret", c.ClientSecret.IsSet())
	enc.AddBool("redirect_uri", c.RedirectURI.IsSet())
	enc.AddBool("username", c.Username.IsSet())
	enc.AddBool("password", c.Password.IsSet())
	return nil
}
