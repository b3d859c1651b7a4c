package respond

import (
	"regexp"
)

var (
	// Hugging Face アクセストークン
	hfTokenPattern = regexp.MustCompile(`hf_[a-zA-Z0-9]+`)

	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// アクセストークンのマスク
	msg = hfTokenPattern.ReplaceAllString(msg, "hf_****")

	// DBパスワードのマスク
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
