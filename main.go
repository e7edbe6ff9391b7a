package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bill-analyzer/api"
	"github.com/carson-networks/bill-analyzer/internal/catalog"
	"github.com/carson-networks/bill-analyzer/internal/config"
	"github.com/carson-networks/bill-analyzer/internal/logging"
	"github.com/carson-networks/bill-analyzer/internal/service"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("bill-analyzer starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dictionary := catalog.NewLoader(envConfig.CategoriesPath, logger).Load()
	svc := service.NewService(dictionary)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:     logger,
			Port:       envConfig.ServerPort,
			Service:    svc,
			Dictionary: dictionary,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
