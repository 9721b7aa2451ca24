package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// TokenHeader is the header the SPA sends its session token in
const TokenHeader = "x-access-token"

// AuthMW validates session tokens
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates the token middleware
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithToken validates x-access-token and stores the subject username in
// the request context. Validity is signature plus expiry only; there is
// no server-side session to consult.
func (m *AuthMW) WithToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"message": "인증이 필요합니다.", "status": "fail"})
			return
		}

		claims, err := m.tokenSvc.Validate(token)
		if err != nil {
			message := "인증이 필요합니다."
			if err == domain.ErrTokenExpired {
				message = "인증이 만료되었습니다."
			}
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"message": message, "status": "fail"})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
