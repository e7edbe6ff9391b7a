package service

import (
	"github.com/carson-networks/bill-analyzer/internal/catalog"
)

// Service holds all business logic services.
type Service struct {
	Analysis *AnalysisService
}

// NewService creates a new Service over the given category dictionary.
func NewService(dictionary catalog.Dictionary) *Service {
	return &Service{
		Analysis: NewAnalysisService(dictionary),
	}
}
