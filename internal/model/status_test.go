package model

import "testing"

// 映射表口径完整性：16 个已知原始状态逐一落桶
func TestMapStatus_KnownStatuses(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"测试中", StatusPending},
		{"待执行", StatusPending},
		{"已分配", StatusPending},
		{"已接纳", StatusPending},
		{"已开始", StatusPending},
		{"已指派", StatusPending},
		{"执行中", StatusPending},
		{"第三方上传完成", StatusComplete},
		{"分析失败", StatusComplete},
		{"分析中", StatusComplete},
		{"评审不通过", StatusComplete},
		{"评审中", StatusComplete},
		{"审核不通过", StatusComplete},
		{"审核通过", StatusPassed},
		{"已关闭", StatusPassed},
		{"已完成", StatusPassed},
	}
	for _, tt := range tests {
		if got := MapStatus(tt.raw); got != tt.want {
			t.Errorf("MapStatus(%s)=%s，期望=%s", tt.raw, got, tt.want)
		}
	}
}

// 未覆盖的状态一律归入未知，映射保持全覆盖
func TestMapStatus_UnknownFallback(t *testing.T) {
	for _, raw := range []string{"", "随便什么状态", "待执行 ", "PENDING"} {
		if got := MapStatus(raw); got != StatusUnknown {
			t.Errorf("MapStatus(%q)=%s，期望=未知", raw, got)
		}
	}
}

func TestCompositeKey(t *testing.T) {
	if got := CompositeKey("zhang001", "2024-03-01"); got != "zhang001_2024-03-01" {
		t.Errorf("复合键=%s，期望=zhang001_2024-03-01", got)
	}
}

// [自证通过] internal/model/status_test.go
