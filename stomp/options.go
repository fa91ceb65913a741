package stomp

import "github.com/sirupsen/logrus"

// FactoryOption is a functional option for ConnectionFactory
type FactoryOption func(*ConnectionFactory)

// WithCredentials sets the login and passcode sent on CONNECT
func WithCredentials(login, passcode string) FactoryOption {
	return func(cf *ConnectionFactory) {
		cf.Login = login
		cf.Passcode = passcode
		cf.HasCredentials = true
	}
}

// WithEOFNewline selects the frame-terminator convention consumed from the
// peer: NUL+newline when true, a bare NUL when false
func WithEOFNewline(eofNL bool) FactoryOption {
	return func(cf *ConnectionFactory) {
		cf.EOFNewline = eofNL
	}
}

// WithHeader appends a header to the CONNECT frame
func WithHeader(name, value string) FactoryOption {
	return func(cf *ConnectionFactory) {
		cf.ExtraHeaders = cf.ExtraHeaders.Add(name, value)
	}
}

// WithExtraHeaders appends headers to the CONNECT frame
func WithExtraHeaders(headers ...Header) FactoryOption {
	return func(cf *ConnectionFactory) {
		cf.ExtraHeaders = append(cf.ExtraHeaders, headers...)
	}
}

// WithDialer sets a custom transport dialer
func WithDialer(dial Dialer) FactoryOption {
	return func(cf *ConnectionFactory) {
		cf.Dial = dial
	}
}

// WithLogger sets a custom logger entry
func WithLogger(log *logrus.Entry) FactoryOption {
	return func(cf *ConnectionFactory) {
		cf.Logger = log
	}
}

// WithMetrics sets a custom metrics collector
func WithMetrics(metrics MetricsCollector) FactoryOption {
	return func(cf *ConnectionFactory) {
		cf.Metrics = metrics
	}
}
