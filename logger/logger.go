package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Development mode gets the
// human-readable console encoder, everything else logs JSON.
func New(env string) (*zap.SugaredLogger, error) {
	var l *zap.Logger
	var err error
	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
