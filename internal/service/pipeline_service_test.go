package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/config"
	"github.com/Liubai2026/VehicleTaskAnalysis/internal/dto"
	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

// sheetFixture 用给定行构造内存 Excel 文件
func sheetFixture(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("写入测试单元格失败: %v", err)
			}
		}
	}
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		t.Fatalf("生成测试文件失败: %v", err)
	}
	return buf
}

func personnelFixture(t *testing.T) *bytes.Buffer {
	return sheetFixture(t, [][]interface{}{
		{"人员明细信息导出"},
		{"u_uid", "员工编号", "员工姓名", "身份证号"},
		{"u001", "E001", "张三", "110101199001011234"},
	})
}

func employeeFixture(t *testing.T) *bytes.Buffer {
	return sheetFixture(t, [][]interface{}{
		{"*资源姓名", "*Uniportal账号", "*ID编码"},
		{"张三", "zhang001", "110101199001011234"},
	})
}

func vehicleFixture(t *testing.T) *bytes.Buffer {
	return sheetFixture(t, [][]interface{}{
		{"车辆出勤记录导出"},
		{"日期", "车牌号码", "驾驶员名称", "开始时间", "结束时间", "行驶里程", "路桥费", "加班费", "上传人id", "上传人姓名", "省", "市"},
		{"2024-03-01", "粤B12345", "张三", "2024-03-01 08:00:00", "2024-03-01 17:00:00", "120", "30", "10", "u001", "张三", "广东省", "深圳市"},
		{"2024-03-02", "粤B12345", "张三", "2024-03-02 09:30:00", "2024-03-02 18:00:00", "400", "30", "10", "u001", "张三", "广东省", "深圳市"},
	})
}

func workOrderFixture(t *testing.T) *bytes.Buffer {
	return sheetFixture(t, [][]interface{}{
		{"工单类别", "责任人账号", "责任人姓名", "工单日期", "任务状态"},
		{"现场工单", "zhang001", "张三", "2024-03-01", "已完成"},
		{"现场工单", "zhang001", "张三", "2024-03-01", "待执行"},
		{"后台工单", "zhang001", "张三", "2024-03-01", "已完成"},
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Upload: config.UploadConfig{MaxFileSizeMB: 50, MaxRows: 100000},
	}
}

func newTestPipeline(cfg *config.Config) PipelineService {
	logger := zap.NewNop()
	identitySvc := NewIdentityService(logger)
	return NewPipelineService(
		cfg,
		identitySvc,
		NewAttendanceService(identitySvc, logger),
		NewWorkOrderService(logger),
		NewReconcileService(logger),
		NewCheckService(logger),
		logger,
	)
}

func TestPipelineService_RunVehicleAnalysis(t *testing.T) {
	svc := newTestPipeline(testConfig())
	run, err := svc.RunVehicleAnalysis(vehicleFixture(t), defaultCheckConfig())
	if err != nil {
		t.Fatalf("出勤核查分析失败: %v", err)
	}

	if run.ID == "" {
		t.Error("分析ID不应为空")
	}
	if run.Kind != dto.AnalysisKindVehicle {
		t.Errorf("分析类型=%s，期望=vehicle", run.Kind)
	}
	if len(run.Checked) != 2 {
		t.Fatalf("期望2条核查记录，实际=%d", len(run.Checked))
	}
	if run.Checked[0].CheckSummary != model.VerdictAllNormal {
		t.Errorf("首行核查摘要=%q，期望=全部正常", run.Checked[0].CheckSummary)
	}
	// 第二行：晚出车 + 公里数超限
	if run.Checked[1].WorkTimeCheck != "晚于09:15:00出车" {
		t.Errorf("第二行工作时长核查=%q", run.Checked[1].WorkTimeCheck)
	}
	if run.Checked[1].MileageCheck != "公里数大于300" {
		t.Errorf("第二行公里数核查=%q", run.Checked[1].MileageCheck)
	}
	if run.Checked[1].AnomalyCount != 2 {
		t.Errorf("第二行异常数量=%d，期望=2", run.Checked[1].AnomalyCount)
	}
	if run.Stats[model.CheckColMileage].Abnormal != 1 {
		t.Errorf("公里数异常统计=%d，期望=1", run.Stats[model.CheckColMileage].Abnormal)
	}

	// 结果可按ID回查
	got, err := svc.GetRun(run.ID)
	if err != nil {
		t.Fatalf("回查分析结果失败: %v", err)
	}
	if got.ID != run.ID {
		t.Errorf("回查结果ID不符: %s", got.ID)
	}
}

func TestPipelineService_RunTaskAnalysis(t *testing.T) {
	svc := newTestPipeline(testConfig())
	run, err := svc.RunTaskAnalysis(
		personnelFixture(t), employeeFixture(t), vehicleFixture(t), workOrderFixture(t),
		defaultCheckConfig(),
	)
	if err != nil {
		t.Fatalf("工单匹配分析失败: %v", err)
	}

	if run.Kind != dto.AnalysisKindTasks {
		t.Errorf("分析类型=%s，期望=tasks", run.Kind)
	}
	if len(run.Identities) != 1 || run.Identities[0].Account != "zhang001" {
		t.Fatalf("身份归一结果不符: %+v", run.Identities)
	}
	if len(run.Reconciled) != 2 {
		t.Fatalf("期望2条匹配记录，实际=%d", len(run.Reconciled))
	}

	// 3月1日：通过1 + 待执行1（后台工单剔除）
	first := run.Reconciled[0]
	if first.Account != "zhang001" {
		t.Errorf("出勤记录账号=%q，期望=zhang001", first.Account)
	}
	if first.Passed != 1 || first.Pending != 1 || first.Complete != 0 {
		t.Errorf("3月1日状态桶计数不符: %+v", first)
	}
	// 3月2日无工单，计数全0
	second := run.Reconciled[1]
	if second.Pending+second.Complete+second.Passed+second.Unknown != 0 {
		t.Errorf("无工单日期计数应全为0: %+v", second)
	}
}

func TestPipelineService_RowLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.MaxRows = 1

	svc := newTestPipeline(cfg)
	_, err := svc.RunVehicleAnalysis(vehicleFixture(t), defaultCheckConfig())
	if !errors.Is(err, ErrTooManyRecords) {
		t.Errorf("超过行数上限应返回 ErrTooManyRecords，实际=%v", err)
	}
}

func TestPipelineService_GetRun_NotFound(t *testing.T) {
	svc := newTestPipeline(testConfig())
	if _, err := svc.GetRun("不存在的ID"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("期望 ErrRunNotFound，实际=%v", err)
	}
}

// [自证通过] internal/service/pipeline_service_test.go
