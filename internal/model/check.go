package model

// CheckConfig 核查规则配置，单次分析内不可变
// 由外部调用方（UI/接口层）提供，取值在两次分析之间可以不同
type CheckConfig struct {
	WorkTime    WorkTimeRule `json:"work_time"`
	Mileage     MileageRule  `json:"mileage"`
	TollFee     FeeRule      `json:"toll_fee"`
	OvertimeFee FeeRule      `json:"overtime_fee"`
}

// WorkTimeRule 工作时长核查规则
type WorkTimeRule struct {
	MinHours      float64 `json:"min_hours"`
	MaxHours      float64 `json:"max_hours"`
	Threshold     string  `json:"threshold"` // 最晚出车时刻 HH:MM:SS
	PunchOnlyMode bool    `json:"punch_only_mode"`
}

// MileageRule 公里数核查规则
type MileageRule struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FeeRule 费用核查规则（下限固定为 0）
type FeeRule struct {
	Max float64 `json:"max"`
}

// 核查结论枚举值（固定集合，不允许自由文本）
// 带阈值的结论（晚于X出车、公里数大于X等）由核查引擎按配置格式化
const (
	VerdictNormal       = "正常"
	VerdictAllNormal    = "全部正常"
	VerdictDataError    = "数据错误" // 兜底分支，常规数据不应触达
	VerdictMissingStart = "未开始打卡"
	VerdictMissingEnd   = "未结束打卡"
	VerdictCrossDay     = "跨天打卡"
	VerdictLeftEarly    = "提前下班"
	VerdictPunchOnly    = "只打卡不出车"
	VerdictMissing      = "数据缺失或格式错误"
)

// 核查结论列名，同时作为统计结果的键
const (
	CheckColWorkTime = "工作时长核查"
	CheckColMileage  = "公里数核查"
	CheckColTollFee  = "路桥费核查"
	CheckColOvertime = "加班费核查"
)

// CheckColumns 固定顺序的核查列名列表
func CheckColumns() []string {
	return []string{CheckColWorkTime, CheckColMileage, CheckColTollFee, CheckColOvertime}
}

// CheckStats 单个核查列的统计信息
type CheckStats struct {
	Total        int            `json:"total"`
	Normal       int            `json:"normal"`
	Abnormal     int            `json:"abnormal"`
	Distribution map[string]int `json:"distribution"`
}

// [自证通过] internal/model/check.go
