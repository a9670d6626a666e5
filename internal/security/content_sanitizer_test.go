package security

import (
	"strings"
	"testing"
)

func TestContentSanitizer_Sanitize(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "基本的なHTMLタグは保持される",
			input:    "<p>Hello <strong>World</strong></p>",
			contains: []string{"<p>", "<strong>World</strong>"},
		},
		{
			name:     "scriptタグは除去される",
			input:    "<p>text</p><script>alert('xss')</script>",
			contains: []string{"<p>text</p>"},
			excludes: []string{"<script>", "alert"},
		},
		{
			name:     "onclickなどのイベントハンドラ属性は除去される",
			input:    `<p onclick="evil()">text</p>`,
			contains: []string{"<p>text</p>"},
			excludes: []string{"onclick", "evil"},
		},
		{
			name:     "javascript:スキームのリンクは除去される",
			input:    `<a href="javascript:alert(1)">link</a>`,
			excludes: []string{"javascript:"},
		},
		{
			name:     "httpsリンクはtarget=_blankとnoreferrerが付与される",
			input:    `<a href="https://example.com">link</a>`,
			contains: []string{`href="https://example.com"`, `target="_blank"`, "noreferrer"},
		},
		{
			name:     "記事見出しタグは保持される",
			input:    "<h2>Section</h2><h3>Sub</h3><h4>Detail</h4>",
			contains: []string{"<h2>Section</h2>", "<h3>Sub</h3>", "<h4>Detail</h4>"},
		},
		{
			name:     "httpsのimgは保持されhttpのimgは除去される",
			input:    `<img src="https://example.com/a.png" alt="ok"><img src="http://example.com/b.png">`,
			contains: []string{`src="https://example.com/a.png"`},
			excludes: []string{"b.png"},
		},
		{
			name:     "iframeは除去される",
			input:    `<p>text</p><iframe src="https://evil.example"></iframe>`,
			contains: []string{"<p>text</p>"},
			excludes: []string{"iframe"},
		},
		{
			name:     "コードブロックは保持される",
			input:    "<pre><code>x := 1</code></pre>",
			contains: []string{"<pre>", "<code>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize() = %q, want substring %q", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("Sanitize() = %q, must not contain %q", got, unwanted)
				}
			}
		})
	}
}

func TestContentSanitizer_SanitizeText(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "タグは全て除去されテキストのみ残る",
			input: "<p>Hello <strong>World</strong></p>",
			want:  "Hello World",
		},
		{
			name:  "scriptの中身も残らない",
			input: "name<script>alert(1)</script>",
			want:  "name",
		},
		{
			name:  "プレーンテキストはそのまま",
			input: "Jordan Smith",
			want:  "Jordan Smith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizer.SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText() = %q, want %q", got, tt.want)
			}
		})
	}
}
