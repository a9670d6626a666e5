// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ContentSanitizerService は外部由来のHTML（遠隔ソースから取得した
// ブログ記事本文や、サクセスストーリーの投稿テキスト）をサニタイズし、
// XSS攻撃などのセキュリティリスクからユーザーを保護する。
// bluemondayライブラリを使用した許可リストベースのポリシーで、
// 安全なタグと属性のみを通過させる。
package security

import (
	"net/url"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizerService はHTMLコンテンツのサニタイズ機能のインターフェースを定義する。
// 遠隔ソースから取得した記事本文の保存前、およびストーリー投稿の受理時に使用される。
type ContentSanitizerService interface {
	// Sanitize はHTMLコンテンツをサニタイズして安全なHTMLを返す。
	// 許可タグ（p, br, a, ul, ol, li, blockquote, pre, code, strong, em,
	// h2, h3, h4, img）のみを通過させ、script, iframe, styleタグおよび
	// on*イベント属性を除去する。
	// 空文字列の入力には空文字列を返し、同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(rawHTML string) string

	// SanitizeText はHTMLタグを一切許可しないプレーンテキスト用の
	// サニタイズを行う。フォーム投稿の自由記述フィールドに使用する。
	SanitizeText(raw string) string
}

// contentSanitizer はContentSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type contentSanitizer struct {
	htmlPolicy *bluemonday.Policy
	textPolicy *bluemonday.Policy
}

// NewContentSanitizer はContentSanitizerServiceの新しいインスタンスを生成する。
// ポリシーの内容:
//   - 許可タグ: p, br, a, ul, ol, li, blockquote, pre, code, strong, em,
//     h2, h3, h4, img（WordPress記事本文の見出しを保持するためh2〜h4を許可）
//   - 禁止タグ: script, iframe, style および全てのon*イベント属性
//   - imgのsrc属性: httpsスキームのみ許可
//   - aタグ: target="_blank" と rel="noopener noreferrer" を自動付与
func NewContentSanitizer() *contentSanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em",
		"h2", "h3", "h4",
	)

	// aタグ: href属性のみ許可。相対URLは不許可（外部取得コンテンツには不適切）。
	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	// imgタグ: srcはhttpsスキームのみ、altはアクセシビリティのため許可。
	p.AllowAttrs("src").OnElements("img")
	p.AllowAttrs("alt").OnElements("img")
	p.AllowURLSchemeWithCustomPolicy("https", func(u *url.URL) bool {
		return true
	})

	return &contentSanitizer{
		htmlPolicy: p,
		textPolicy: bluemonday.StrictPolicy(),
	}
}

// Sanitize はHTMLコンテンツをサニタイズして安全なHTMLを返す。
func (s *contentSanitizer) Sanitize(rawHTML string) string {
	return s.htmlPolicy.Sanitize(rawHTML)
}

// SanitizeText は全タグを除去したプレーンテキストを返す。
func (s *contentSanitizer) SanitizeText(raw string) string {
	return s.textPolicy.Sanitize(raw)
}
