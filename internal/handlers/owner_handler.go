package handlers

import (
	"strconv"
	"time"

	"wms/internal/models"
	"wms/internal/services"
	"wms/pkg/pagination"
	"wms/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OwnerHandler struct {
	ownerService *services.OwnerService
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{
		ownerService: services.NewOwnerService(db),
	}
}

type CreateOwnerRequest struct {
	Code string `json:"code" binding:"required,max=64"`
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateOwnerRequest struct {
	Code string `json:"code" binding:"required,max=64"`
	Name string `json:"name" binding:"required,max=100"`
	// 调用方最近读到的版本号，0是合法值所以用指针表达required
	Version *int `json:"version" binding:"required,gte=0"`
}

// OwnerResponse 货主返回结构
type OwnerResponse struct {
	ID        uint       `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
	UpdatedAt *time.Time `json:"updated_at"`
	UpdatedBy *string    `json:"updated_by"`
	Version   int        `json:"version"`
}

func toOwnerResponse(owner *models.Owner) OwnerResponse {
	return OwnerResponse{
		ID:        owner.ID,
		Code:      owner.Code,
		Name:      owner.Name,
		CreatedAt: owner.CreatedAt,
		CreatedBy: owner.CreatedBy,
		UpdatedAt: owner.UpdatedAt,
		UpdatedBy: owner.UpdatedBy,
		Version:   owner.Version,
	}
}

func toOwnerResponses(owners []*models.Owner) []OwnerResponse {
	result := make([]OwnerResponse, 0, len(owners))
	for _, owner := range owners {
		result = append(result, toOwnerResponse(owner))
	}
	return result
}

// Create 创建货主
func (h *OwnerHandler) Create(c *gin.Context) {
	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	owner, err := h.ownerService.Create(c.Request.Context(), req.Code, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, toOwnerResponse(owner))
}

// Update 更新货主，请求体必须携带最近读到的version
func (h *OwnerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	owner, err := h.ownerService.Update(c.Request.Context(), id, req.Code, req.Name, *req.Version)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, toOwnerResponse(owner))
}

// Delete 逻辑删除货主
func (h *OwnerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.ownerService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}

// GetByID 按ID查询货主
func (h *OwnerHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	owner, err := h.ownerService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, toOwnerResponse(owner))
}

// List 分页列出货主
func (h *OwnerHandler) List(c *gin.Context) {
	params := pagination.ParsePageParams(c)

	owners, total, err := h.ownerService.List(c.Request.Context(), params.Page, params.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	pageInfo := pagination.NewPageInfo(params.Page, params.PageSize, total)
	response.SuccessWithPage(c, toOwnerResponses(owners), pageInfo)
}

// Search 关键字检索货主
func (h *OwnerHandler) Search(c *gin.Context) {
	params := pagination.ParsePageParams(c)
	keyword := c.Query("keyword")

	owners, total, err := h.ownerService.Search(c.Request.Context(), keyword, params.Page, params.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	pageInfo := pagination.NewPageInfo(params.Page, params.PageSize, total)
	response.SuccessWithPage(c, toOwnerResponses(owners), pageInfo)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID格式错误")
		return 0, false
	}
	return uint(id), true
}
