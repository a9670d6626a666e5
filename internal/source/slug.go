package source

import "strings"

// Slugify は表示名やタイトルからURLスラッグを生成する。
// 英数字以外は区切り文字のみダッシュへ変換し、他は落とす。
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteRune('-')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
