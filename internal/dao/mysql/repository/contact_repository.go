package repository

import (
	"cm_contact_server/internal/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系人 Repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// searchScope 构造归属用户 + 搜索词的公共过滤条件
// term 非空时对四个字段做子串匹配（大小写是否敏感取决于列的 collation）
func (r *contactRepository) searchScope(userID uint, term string) *gorm.DB {
	q := r.db.Model(&model.Contact{}).Where("user_id = ?", userID)
	if term != "" {
		like := "%" + term + "%"
		q = q.Where("(first_name LIKE ? OR last_name LIKE ? OR phone LIKE ? OR email LIKE ?)",
			like, like, like, like)
	}
	return q
}

// FindByIDAndUserID 按归属用户查找单个联系人
func (r *contactRepository) FindByIDAndUserID(contactID, userID uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.Where("id = ? AND user_id = ?", contactID, userID).First(&contact).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询联系人 id=%d user_id=%d", contactID, userID)
	}
	return &contact, nil
}

// SearchPage 分页查询归属用户的联系人
// 排序固定为 last_name, first_name, id：id 兜底保证同名时分页边界稳定
func (r *contactRepository) SearchPage(userID uint, term string, offset, limit int) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.searchScope(userID, term).
		Order("last_name, first_name, id").
		Offset(offset).
		Limit(limit).
		Find(&contacts).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "搜索联系人 user_id=%d", userID)
	}
	return contacts, nil
}

// CountSearch 统计同一过滤条件下的总行数
func (r *contactRepository) CountSearch(userID uint, term string) (int64, error) {
	var count int64
	if err := r.searchScope(userID, term).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计联系人 user_id=%d", userID)
	}
	return count, nil
}

// Create 创建联系人
func (r *contactRepository) Create(contact *model.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		return wrapDBError(err, "创建联系人")
	}
	return nil
}

// UpdateFields 全字段替换，按 id AND user_id 过滤
// 使用 map 更新以允许 phone/email 被置为空字符串
func (r *contactRepository) UpdateFields(contactID, userID uint, firstName, lastName, phone, email string) error {
	err := r.db.Model(&model.Contact{}).
		Where("id = ? AND user_id = ?", contactID, userID).
		Updates(map[string]any{
			"first_name": firstName,
			"last_name":  lastName,
			"phone":      phone,
			"email":      email,
		}).Error
	if err != nil {
		return wrapDBErrorf(err, "更新联系人 id=%d user_id=%d", contactID, userID)
	}
	return nil
}

// CountDuplicates 统计同一用户下其它联系人中与给定 email/phone 重复的行数
// 空字符串不参与比较：多个没有电话/邮箱的联系人之间不算重复
func (r *contactRepository) CountDuplicates(userID, excludeContactID uint, email, phone string) (int64, error) {
	if email == "" && phone == "" {
		return 0, nil
	}

	q := r.db.Model(&model.Contact{}).
		Where("user_id = ? AND id <> ?", userID, excludeContactID)

	switch {
	case email != "" && phone != "":
		q = q.Where("(email = ? OR phone = ?)", email, phone)
	case email != "":
		q = q.Where("email = ?", email)
	default:
		q = q.Where("phone = ?", phone)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "联系人重复检查 user_id=%d", userID)
	}
	return count, nil
}

// DeleteScoped 按 id AND user_id 删除，返回删除的行数
// 行数为 0 时由调用方决定语义（不存在或不属于该用户，二者不区分）
func (r *contactRepository) DeleteScoped(contactID, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", contactID, userID).Delete(&model.Contact{})
	if res.Error != nil {
		return 0, wrapDBErrorf(res.Error, "删除联系人 id=%d user_id=%d", contactID, userID)
	}
	return res.RowsAffected, nil
}
