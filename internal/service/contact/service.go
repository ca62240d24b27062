// Package contact 提供联系人业务逻辑
// 分页搜索和归属过滤的增删改都在这里实现
package contact

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"cm_contact_server/internal/dao/mysql/repository"
	"cm_contact_server/internal/dto/request"
	"cm_contact_server/internal/dto/respond"
	"cm_contact_server/internal/infrastructure/mq"
	"cm_contact_server/internal/model"
	"cm_contact_server/pkg/constants"
	"cm_contact_server/pkg/errorx"
)

// contactService 联系人业务逻辑实现
type contactService struct {
	repos *repository.Repositories
}

// NewContactService 构造函数
func NewContactService(repos *repository.Repositories) *contactService {
	return &contactService{repos: repos}
}

// Search 分页搜索联系人
// 分页算法：offset = (page-1)*limit，多取一行探测是否有下一页
// totalCount 由同一过滤条件的 COUNT 查询给出，totalPages 向上取整且最小为 1
func (s *contactService) Search(req request.SearchContactsRequest) (*respond.SearchContactsRespond, error) {
	term := strings.TrimSpace(req.Search)
	if utf8.RuneCountInString(term) > constants.SEARCH_TERM_MAX_LEN {
		return nil, errorx.Newf(errorx.CodeInvalidInput,
			"search term exceeds %d characters", constants.SEARCH_TERM_MAX_LEN)
	}

	// page 最小为 1
	page := req.Page
	if page < 1 {
		page = 1
	}

	// limit 缺省取默认值，其余情况收敛到 [1, MAX_PAGE_SIZE]
	limit := req.Limit
	switch {
	case limit == 0:
		limit = constants.DEFAULT_PAGE_SIZE
	case limit < 1:
		limit = 1
	case limit > constants.MAX_PAGE_SIZE:
		limit = constants.MAX_PAGE_SIZE
	}

	offset := (page - 1) * limit

	// 多取一行：取到 limit+1 行说明还有下一页，返回前丢掉多取的那行
	rows, err := s.repos.Contact.SearchPage(req.UserId, term, offset, limit+1)
	if err != nil {
		zap.L().Error("搜索联系人失败", zap.Error(err), zap.Uint("userId", req.UserId))
		return nil, err
	}
	hasNext := len(rows) > limit
	if hasNext {
		rows = rows[:limit]
	}

	total, err := s.repos.Contact.CountSearch(req.UserId, term)
	if err != nil {
		zap.L().Error("统计联系人失败", zap.Error(err), zap.Uint("userId", req.UserId))
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	if totalPages < 1 {
		totalPages = 1
	}

	results := make([]respond.ContactSummary, 0, len(rows))
	for _, c := range rows {
		results = append(results, respond.ContactSummary{
			Id:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Phone:     c.Phone,
			Email:     c.Email,
		})
	}

	return &respond.SearchContactsRespond{
		Results: results,
		Pagination: respond.Pagination{
			CurrentPage: page,
			HasNextPage: hasNext,
			TotalCount:  total,
			TotalPages:  totalPages,
		},
	}, nil
}

// Add 新增联系人
// 按既有行为不做重复检查，重复策略只在更新时生效
func (s *contactService) Add(req request.AddContactRequest) (uint, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return 0, errorx.ErrInvalidSchema
	}

	newContact := &model.Contact{
		UserId:    req.UserId,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
	}
	if err := s.repos.Contact.Create(newContact); err != nil {
		zap.L().Error("创建联系人失败", zap.Error(err), zap.Uint("userId", req.UserId))
		return 0, err
	}

	mq.Publish("add", req.UserId, newContact.ID)
	return newContact.ID, nil
}

// Update 全字段更新联系人
// 步骤：归属检查 -> 重复检查 -> 替换字段
// 内容未变化的更新同样视为成功
func (s *contactService) Update(req request.UpdateContactRequest) error {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	phone := strings.TrimSpace(*req.Phone)
	email := strings.TrimSpace(*req.Email)
	if firstName == "" || lastName == "" {
		return errorx.ErrInvalidSchema
	}

	// 1. 归属检查：记录必须存在且属于该用户
	if _, err := s.repos.Contact.FindByIDAndUserID(req.ContactId, req.UserId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeContactNotExist, "contact not found for this user")
		}
		zap.L().Error("联系人归属检查失败", zap.Error(err),
			zap.Uint("userId", req.UserId), zap.Uint("contactId", req.ContactId))
		return err
	}

	// 2. 重复检查：该用户的其它联系人中不允许出现相同的非空 email/phone
	dupCount, err := s.repos.Contact.CountDuplicates(req.UserId, req.ContactId, email, phone)
	if err != nil {
		zap.L().Error("联系人重复检查失败", zap.Error(err), zap.Uint("userId", req.UserId))
		return err
	}
	if dupCount > 0 {
		return errorx.New(errorx.CodeContactExists,
			"another contact with this email or phone already exists")
	}

	// 3. 字段替换（id 和归属不变）
	if err := s.repos.Contact.UpdateFields(req.ContactId, req.UserId, firstName, lastName, phone, email); err != nil {
		zap.L().Error("更新联系人失败", zap.Error(err),
			zap.Uint("userId", req.UserId), zap.Uint("contactId", req.ContactId))
		return err
	}

	mq.Publish("update", req.UserId, req.ContactId)
	return nil
}

// Delete 删除联系人
// 0 行受影响统一返回"联系人不存在"：不区分记录缺失和归属他人
func (s *contactService) Delete(userId, contactId uint) error {
	affected, err := s.repos.Contact.DeleteScoped(contactId, userId)
	if err != nil {
		zap.L().Error("删除联系人失败", zap.Error(err),
			zap.Uint("userId", userId), zap.Uint("contactId", contactId))
		return err
	}
	if affected == 0 {
		return errorx.New(errorx.CodeContactNotExist, "contact not found for this user")
	}

	mq.Publish("delete", userId, contactId)
	return nil
}
