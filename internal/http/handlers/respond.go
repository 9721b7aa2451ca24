package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// failMessage pairs a domain sentinel with its user-facing message.
// Order matters: the first match wins.
type failMessage struct {
	err     error
	message string
}

var failMessages = []failMessage{
	{domain.ErrInvalidRequest, "잘못된 요청입니다."},
	{domain.ErrUserNotFound, "존재하지 않는 계정입니다."},
	{domain.ErrInvalidCredentials, "비밀번호가 올바르지 않습니다."},
	{domain.ErrNotVerified, "이메일 인증을 완료해주십시오."},
	{domain.ErrDuplicateUsername, "이미 존재하는 아이디입니다."},
	{domain.ErrDuplicateNickname, "이미 존재하는 닉네임입니다."},
	{domain.ErrDuplicateEmail, "이미 존재하는 이메일입니다."},
	{domain.ErrInvalidAuthCode, "잘못된 인증코드입니다."},
	{domain.ErrCodeResendLimit, "잠시 후 다시 시도해주십시오."},
	{domain.ErrMailDelivery, "인증 메일 발송에 실패했습니다."},
	{domain.ErrUnsupportedImage, "지원하지 않는 이미지 형식입니다."},
	{domain.ErrTokenExpired, "인증이 만료되었습니다."},
	{domain.ErrTokenInvalid, "인증이 필요합니다."},
	{domain.ErrTokenMalformed, "인증이 필요합니다."},
}

const genericFailMessage = "오류가 발생했습니다."

// fail renders a business failure. The SPA only inspects the body, so
// the transport status stays 200 and the machine-checkable field is
// status=fail; unmapped errors collapse into a generic message.
func fail(c *gin.Context, err error) {
	message := genericFailMessage
	for _, fm := range failMessages {
		if errors.Is(err, fm.err) {
			message = fm.message
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "status": "fail"})
}

func ok(c *gin.Context, extra gin.H) {
	body := gin.H{"status": "ok"}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
