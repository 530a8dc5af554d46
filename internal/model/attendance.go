package model

import "time"

// AttendanceRecord 车辆出勤记录
// 日期/时间/数值字段以指针表示可缺失：解析失败降级为 nil，不作为错误抛出
// 核查相关字段（WorkDuration 及四个核查结论、摘要、异常数量）由核查引擎就地写入
type AttendanceRecord struct {
	Date         *time.Time `json:"-"`             // 日期
	DateStr      string     `json:"date"`          // 日期（YYYY-MM-DD，解析失败为空串）
	PlateNo      string     `json:"plate_no"`      // 车牌号码
	DriverName   string     `json:"driver_name"`   // 驾驶员名称
	StartTime    *time.Time `json:"start_time"`    // 开始时间
	EndTime      *time.Time `json:"end_time"`      // 结束时间
	Mileage      *float64   `json:"mileage"`       // 行驶里程
	TollFee      *float64   `json:"toll_fee"`      // 路桥费
	OvertimeFee  *float64   `json:"overtime_fee"`  // 加班费
	UploaderID   string     `json:"uploader_id"`   // 上传人id
	UploaderName string     `json:"uploader_name"` // 上传人姓名
	Province     string     `json:"province"`      // 省
	City         string     `json:"city"`          // 市
	PunchOnly    bool       `json:"punch_only"`    // 只打卡不出车
	Account      string     `json:"account"`       // Uniportal账号（身份归一后，未匹配为空串）

	WorkDuration  *float64 `json:"work_duration"`  // 工作时长（小时，保留一位小数）
	WorkTimeCheck string   `json:"work_time_check"` // 工作时长核查
	MileageCheck  string   `json:"mileage_check"`   // 公里数核查
	TollFeeCheck  string   `json:"toll_fee_check"`  // 路桥费核查
	OvertimeCheck string   `json:"overtime_check"`  // 加班费核查
	CheckSummary  string   `json:"check_summary"`   // 核查摘要
	AnomalyCount  int      `json:"anomaly_count"`   // 异常数量
}

// ReconciledRecord 出勤记录与工单日聚合匹配后的结果行
// 复合键无匹配时四个计数均为 0
type ReconciledRecord struct {
	AttendanceRecord
	Pending  int `json:"pending_count"`  // 待执行
	Complete int `json:"complete_count"` // 完成
	Passed   int `json:"passed_count"`   // 通过
	Unknown  int `json:"unknown_count"`  // 未知
}

// [自证通过] internal/model/attendance.go
