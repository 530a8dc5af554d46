package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Liubai2026/VehicleTaskAnalysis/config"
	"github.com/Liubai2026/VehicleTaskAnalysis/internal/dto"
	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
	"github.com/Liubai2026/VehicleTaskAnalysis/internal/service"
	apperrors "github.com/Liubai2026/VehicleTaskAnalysis/pkg/errors"
	"github.com/Liubai2026/VehicleTaskAnalysis/pkg/response"
)

// AnalysisHandler 分析模块 HTTP 处理器
type AnalysisHandler struct {
	cfg *config.Config
	svc *service.Service
}

// NewAnalysisHandler 创建 AnalysisHandler
func NewAnalysisHandler(cfg *config.Config, svc *service.Service) *AnalysisHandler {
	return &AnalysisHandler{cfg: cfg, svc: svc}
}

// VehicleAnalysis 单文件出勤核查
// POST /api/v1/analysis/vehicle
// 表单字段：file（出勤记录 Excel），config（可选，核查阈值局部覆盖 JSON）
func (h *AnalysisHandler) VehicleAnalysis(c *gin.Context) {
	file, err := h.openFormFile(c, "file")
	if err != nil {
		response.BadRequest(c, 20001, "缺少出勤记录文件: file")
		return
	}
	defer file.Close()

	cfg, ok := h.parseCheckConfig(c)
	if !ok {
		return
	}

	run, err := h.svc.Pipeline.RunVehicleAnalysis(file, cfg)
	if err != nil {
		h.handleAnalysisError(c, err)
		return
	}

	response.Created(c, runResponse(run))
}

// TaskAnalysis 四文件工单匹配分析
// POST /api/v1/analysis/tasks
// 表单字段：personnel、employee、vehicle、task（四个 Excel 源），config（可选）
func (h *AnalysisHandler) TaskAnalysis(c *gin.Context) {
	sources := []struct {
		field string
		label string
	}{
		{"personnel", "人员明细信息"},
		{"employee", "资源员工信息"},
		{"vehicle", "车辆出勤记录"},
		{"task", "工单履行明细"},
	}

	files := make([]multipart.File, 0, len(sources))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	for _, src := range sources {
		f, err := h.openFormFile(c, src.field)
		if err != nil {
			response.BadRequest(c, 20001, "缺少"+src.label+"文件: "+src.field)
			return
		}
		files = append(files, f)
	}

	cfg, ok := h.parseCheckConfig(c)
	if !ok {
		return
	}

	run, err := h.svc.Pipeline.RunTaskAnalysis(files[0], files[1], files[2], files[3], cfg)
	if err != nil {
		h.handleAnalysisError(c, err)
		return
	}

	response.Created(c, runResponse(run))
}

// GetRun 查询分析结果
// GET /api/v1/analysis/:id
func (h *AnalysisHandler) GetRun(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}
	response.OK(c, runResponse(run))
}

// GetStatistics 查询核查统计
// GET /api/v1/analysis/:id/statistics
func (h *AnalysisHandler) GetStatistics(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}
	response.OK(c, run.Stats)
}

// GetUploaderStats 上传人平均履行效果排名
// GET /api/v1/analysis/:id/uploader-stats?top_n=10&province=&city=&uploader=&start_date=&end_date=
func (h *AnalysisHandler) GetUploaderStats(c *gin.Context) {
	run, ok := h.loadTaskRun(c)
	if !ok {
		return
	}

	topN := h.cfg.Analysis.TopN
	if v := c.Query("top_n"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}

	filtered := h.svc.Analytics.FilterTrend(run.Reconciled, bindTrendFilters(c))
	response.OK(c, h.svc.Analytics.UploaderStats(filtered, topN))
}

// GetCityTrends 城市-日期平均履行效果
// GET /api/v1/analysis/:id/city-trends?max_cities=10&…筛选参数同上…
func (h *AnalysisHandler) GetCityTrends(c *gin.Context) {
	run, ok := h.loadTaskRun(c)
	if !ok {
		return
	}

	maxCities := h.cfg.Analysis.MaxCities
	if v := c.Query("max_cities"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxCities = n
		}
	}

	filtered := h.svc.Analytics.FilterTrend(run.Reconciled, bindTrendFilters(c))
	response.OK(c, h.svc.Analytics.CityTrends(filtered, maxCities))
}

// GetTrendSummary 按日期（和城市）汇总状态桶总数
// GET /api/v1/analysis/:id/trend-summary?…筛选参数同上…
func (h *AnalysisHandler) GetTrendSummary(c *gin.Context) {
	run, ok := h.loadTaskRun(c)
	if !ok {
		return
	}

	filtered := h.svc.Analytics.FilterTrend(run.Reconciled, bindTrendFilters(c))
	response.OK(c, h.svc.Analytics.TrendSummary(filtered))
}

// Export 导出结果表
// GET /api/v1/analysis/:id/export
func (h *AnalysisHandler) Export(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}

	var (
		buf      *bytes.Buffer
		filename string
		err      error
	)
	if run.Kind == dto.AnalysisKindTasks {
		buf, filename, err = h.svc.Export.ExportReconciled(run.Reconciled)
	} else {
		buf, filename, err = h.svc.Export.ExportChecked(run.Checked)
	}
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ── 辅助方法 ──

func (h *AnalysisHandler) openFormFile(c *gin.Context, field string) (multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	return fh.Open()
}

// parseCheckConfig 以服务端默认阈值为基准，合并请求中的局部覆盖
func (h *AnalysisHandler) parseCheckConfig(c *gin.Context) (model.CheckConfig, bool) {
	base := h.cfg.Check.ToModel()

	raw := c.PostForm("config")
	if raw == "" {
		return base, true
	}

	var req dto.CheckConfigRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 20002, "核查配置格式错误", err.Error())
		return model.CheckConfig{}, false
	}
	return req.ApplyTo(base), true
}

func (h *AnalysisHandler) loadRun(c *gin.Context) (*service.AnalysisRun, bool) {
	run, err := h.svc.Pipeline.GetRun(c.Param("id"))
	if err != nil {
		response.NotFound(c, 20201, "分析结果不存在或已失效")
		return nil, false
	}
	return run, true
}

// loadTaskRun 趋势统计仅对工单匹配分析结果有效
func (h *AnalysisHandler) loadTaskRun(c *gin.Context) (*service.AnalysisRun, bool) {
	run, ok := h.loadRun(c)
	if !ok {
		return nil, false
	}
	if run.Kind != dto.AnalysisKindTasks {
		response.BadRequest(c, 20202, "该分析结果不包含工单匹配数据")
		return nil, false
	}
	return run, true
}

func bindTrendFilters(c *gin.Context) dto.TrendFilters {
	return dto.TrendFilters{
		Province:  c.Query("province"),
		City:      c.Query("city"),
		Uploader:  c.Query("uploader"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}

func (h *AnalysisHandler) handleAnalysisError(c *gin.Context, err error) {
	var structural *apperrors.StructuralError
	switch {
	case errors.As(err, &structural):
		response.BadRequest(c, 20101, structural.Error())
	case errors.Is(err, service.ErrTooManyRecords):
		response.BadRequest(c, 20102, err.Error())
	default:
		response.InternalError(c)
	}
}

func (h *AnalysisHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoRecords):
		response.BadRequest(c, 20301, "没有可导出的记录")
	default:
		response.InternalError(c)
	}
}

// runResponse 分析上下文转响应结构
func runResponse(run *service.AnalysisRun) dto.AnalysisRunResponse {
	resp := dto.AnalysisRunResponse{
		RunID:      run.ID,
		Kind:       run.Kind,
		CreatedAt:  run.CreatedAt,
		Config:     run.Config,
		Statistics: run.Stats,
	}
	if run.Kind == dto.AnalysisKindTasks {
		resp.Identities = run.Identities
		resp.Reconciled = run.Reconciled
		resp.RecordCount = len(run.Reconciled)
	} else {
		resp.Records = run.Checked
		resp.RecordCount = len(run.Checked)
	}
	return resp
}

// [自证通过] internal/api/handler/analysis_handler.go
