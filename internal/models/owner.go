package models

// Owner 货主模型，仓库中库存的归属方，主档数据的代表实体
type Owner struct {
	AuditModel
	// 唯一索引只覆盖未删除行，逻辑删除后编码可以复用
	Code string `gorm:"size:64;not null;uniqueIndex:uk_wms_owners_code,where:deleted = false" json:"code"`
	Name string `gorm:"size:100;not null" json:"name"` // 货主名称
}

// TableName 表名
func (o *Owner) TableName() string {
	return "wms_owners"
}

// UniqueColumn 业务唯一字段列名
func (o *Owner) UniqueColumn() string {
	return "code"
}

// UniqueValue 业务唯一字段当前值
func (o *Owner) UniqueValue() string {
	return o.Code
}

// SearchColumns 关键字检索覆盖的文本列
func (o *Owner) SearchColumns() []string {
	return []string{"code", "name"}
}

// UpdateValues 更新时写入的业务列
func (o *Owner) UpdateValues() map[string]interface{} {
	return map[string]interface{}{
		"code": o.Code,
		"name": o.Name,
	}
}
