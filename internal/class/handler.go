package class

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymslot/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Define a class
// @Description  Admin-only: create a class with a weekly schedule and a per-slot capacity
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body class.DefineClassRequest true "Class payload"
// @Success      201 {object} class.Class
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) DefineClass(c *gin.Context) {
	var req DefineClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	class, err := h.service.DefineClass(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

// @Summary      Update a class
// @Description  Admin-only: change one or more fields of a class
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        classID path string true "Class ID"
// @Param        request body class.ClassPatch true "Fields to change"
// @Success      200 {object} class.Class
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /admin/classes/{classID} [patch]
func (h *Handler) UpdateClass(c *gin.Context) {
	var patch ClassPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.BindError(c, err)
		return
	}

	class, err := h.service.UpdateClass(c.Request.Context(), c.Param("classID"), patch)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, class)
}

// @Summary      Delete a class
// @Description  Admin-only: remove a class and all of its registrations
// @Tags         admin,classes
// @Produce      json
// @Security     BearerAuth
// @Param        classID path string true "Class ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /admin/classes/{classID} [delete]
func (h *Handler) DeleteClass(c *gin.Context) {
	if err := h.service.DeleteClass(c.Request.Context(), c.Param("classID")); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "class deleted"})
}

// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} class.ClassView
// @Failure      401 {object} api.ErrorResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// @Summary      Get a class
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        classID path string true "Class ID"
// @Success      200 {object} class.ClassView
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	class, err := h.service.GetClass(c.Request.Context(), c.Param("classID"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, class)
}
