package main

import (
	"go.uber.org/zap"

	"github.com/nutsdb/nutshash"
	"github.com/nutsdb/nutshash/internal/utils"
)

func newLogger(environment string) *zap.SugaredLogger {
	if environment == EnvDev {
		return utils.Must(zap.NewDevelopment()).Sugar()
	}
	return utils.Must(zap.NewProduction()).Sugar()
}

// installLogger routes the library's Printf logging into log at debug
// level.
func installLogger(log *zap.SugaredLogger) {
	nutshash.SetLogger(nutshash.LoggerFunc(log.Debugf))
}
