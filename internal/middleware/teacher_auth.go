package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/sciencegrader/internal/dto"
	"github.com/rs/zerolog/log"
)

const TeacherPasswordHeader = "X-Teacher-Password"

// TeacherAuth guards the dashboard with the shared teacher password.
func TeacherAuth(password string) gin.HandlerFunc {
	expected := []byte(password)
	return func(c *gin.Context) {
		given := []byte(c.GetHeader(TeacherPasswordHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(given, expected) != 1 {
			log.Warn().Str("client_ip", c.ClientIP()).Str("path", c.FullPath()).Msg("Rejected dashboard request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "비밀번호가 올바르지 않습니다"})
			return
		}
		c.Next()
	}
}
