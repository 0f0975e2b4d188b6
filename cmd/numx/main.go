package main

import (
	"os"

	logger "github.com/moontrade/log"

	"github.com/moontrade/numx/config"
	"github.com/moontrade/numx/pkg/util"
)

func main() {
	defer func() {
		if e := recover(); e != nil {
			logger.Error(util.PanicToError(e), "numx panic")
			os.Exit(2)
		}
	}()
	if err := config.Load(".env"); err != nil {
		logger.WarnErr(err, "config")
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
