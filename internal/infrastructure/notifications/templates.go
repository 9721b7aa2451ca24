package notifications

// VerificationData holds fields for the verification mail template
type VerificationData struct {
	Code    string
	AppName string
}

const emailTemplates = `
{{define "verification"}}
<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <title>이메일 인증</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #ffffff; border-radius: 12px; padding: 40px; border: 1px solid #eee;">
        <h2 style="text-align: center;">{{.AppName}} 이메일 인증</h2>
        <p>아래 인증코드를 회원가입 화면에 입력해주세요.</p>
        <div style="background-color: #f5f5f5; border-radius: 8px; padding: 16px; text-align: center; word-break: break-all; font-family: monospace;">
            {{.Code}}
        </div>
        <p style="color: #888; font-size: 13px;">본인이 요청하지 않았다면 이 메일을 무시하셔도 됩니다.</p>
    </div>
</body>
</html>
{{end}}
`
