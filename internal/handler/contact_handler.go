// Package handler 提供 HTTP 请求处理器
// 本文件处理联系人相关的 API 请求
package handler

import (
	"cm_contact_server/internal/dto/request"
	"cm_contact_server/internal/service"
	"cm_contact_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ContactHandler 联系人请求处理器
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler 创建联系人处理器实例
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// Search 分页搜索当前用户的联系人
// POST /api/searchContacts
// 请求体: request.SearchContactsRequest
// 响应: { results: []ContactSummary, pagination: Pagination }
func (h *ContactHandler) Search(c *gin.Context) {
	var req request.SearchContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if !authorizedFor(c, req.UserId) {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "token does not match the requested user"))
		return
	}

	data, err := h.contactSvc.Search(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{
		"results":    data.Results,
		"pagination": data.Pagination,
	})
}

// Add 新增联系人
// POST /api/addContact
// 请求体: request.AddContactRequest
// 响应: { id: uint }
func (h *ContactHandler) Add(c *gin.Context) {
	var req request.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if !authorizedFor(c, req.UserId) {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "token does not match the requested user"))
		return
	}

	id, err := h.contactSvc.Add(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"id": id})
}

// Update 整体更新一条联系人记录
// POST /api/updateContact
// 请求体: request.UpdateContactRequest（phone/email 必须出现，允许为空串）
// 响应: { contactUpdated: true, id: uint }
func (h *ContactHandler) Update(c *gin.Context) {
	var req request.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if !authorizedFor(c, req.UserId) {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "token does not match the requested user"))
		return
	}

	if err := h.contactSvc.Update(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{
		"contactUpdated": true,
		"id":             req.ContactId,
	})
}

// Delete 删除当前用户的一条联系人记录
// POST /api/deleteContact
// 请求体: request.DeleteContactRequest
// 响应: { contactDeleted: true, id: uint }
// 删除失败时信封中附带 contactDeleted: false
func (h *ContactHandler) Delete(c *gin.Context) {
	var req request.DeleteContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if !authorizedFor(c, req.UserId) {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "token does not match the requested user"))
		return
	}

	if err := h.contactSvc.Delete(req.UserId, req.ContactId); err != nil {
		HandleErrorWith(c, err, gin.H{"contactDeleted": false})
		return
	}
	HandleSuccess(c, gin.H{
		"contactDeleted": true,
		"id":             req.ContactId,
	})
}
