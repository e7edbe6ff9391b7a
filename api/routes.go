package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bill-analyzer/internal/catalog"
	"github.com/carson-networks/bill-analyzer/internal/handlers/v1/analyze"
	"github.com/carson-networks/bill-analyzer/internal/handlers/v1/category"
	"github.com/carson-networks/bill-analyzer/internal/handlers/v1/status"
	"github.com/carson-networks/bill-analyzer/internal/logging"
	"github.com/carson-networks/bill-analyzer/internal/service"
)

type Rest struct {
	Logger     *logrus.Logger
	Port       string
	Service    *service.Service
	Dictionary catalog.Dictionary
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("bill-analyzer", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler().Register(humaAPI)
	analyze.NewAnalyzeTransactionsHandler(r.Service.Analysis).Register(humaAPI)
	analyze.NewAnalyzeRowsHandler(r.Service.Analysis).Register(humaAPI)
	analyze.NewExportCSVHandler(r.Service.Analysis).Register(humaAPI)
	category.NewListCategoriesHandler(r.Dictionary).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
