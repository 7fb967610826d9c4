package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrucampus/helpdesk/internal/app/authz"
	"github.com/mrucampus/helpdesk/internal/app/models"
	"github.com/mrucampus/helpdesk/internal/app/models/dto"
	"github.com/mrucampus/helpdesk/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID       = "userID"
	ContextUserEmail    = "userEmail"
	ContextUserRole     = "userRole"
	ContextDepartmentID = "departmentID"
)

// JWTAuth validates the bearer token and stores the caller identity on the
// request context
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authorization header missing or malformed")
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, models.Role(claims.Role))
		if claims.DepartmentID != nil {
			c.Set(ContextDepartmentID, *claims.DepartmentID)
		}

		c.Next()
	}
}

// RequireCapability rejects callers whose role does not hold the capability.
// Must run after JWTAuth.
func RequireCapability(capability authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok || !authz.Allowed(role, capability) {
			errDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "You do not have permission to perform this action")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errDetail))
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id from the context
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// GetUserRole returns the authenticated role from the context
func GetUserRole(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ContextUserRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

// GetDepartmentID returns the caller's department id, or nil when the token
// carries none
func GetDepartmentID(c *gin.Context) *int64 {
	v, exists := c.Get(ContextDepartmentID)
	if !exists {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	errDetail := dto.NewErrorDetail(code, message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errDetail))
}
