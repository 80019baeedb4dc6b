package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beatystore/admin-gateway/internal/models"
)

type setRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// ListUsers fetches the admin user list; user management always reads
// server truth.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := h.client.Users(ctx, h.session.Token())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := users[:0]
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.Username), search) ||
				strings.Contains(strings.ToLower(u.Email), search) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	respondData(c, users)
}

// DeleteUser removes a user account.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid user id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.DeleteUser(ctx, h.session.Token(), id); err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondOK(c, "user deleted")
}

// SetUserRole assigns one of the three fixed roles.
func (h *Handler) SetUserRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid user id")
		return
	}

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Role.IsValid() {
		respondInvalid(c, "role must be Admin, Staff or Customer")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.SetRole(ctx, h.session.Token(), id, req.Role); err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondOK(c, "role updated")
}
