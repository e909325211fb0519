package logger

import "go.uber.org/zap"

// NewNamed creates a zap logger for the given environment, named after the
// service. Production uses JSON sampling output; everything else gets the
// human-readable development encoder.
func NewNamed(appEnv, service string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(service), nil
}
