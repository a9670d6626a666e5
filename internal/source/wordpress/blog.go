package wordpress

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/hitoshi/mentorhub/internal/model"
	"github.com/hitoshi/mentorhub/internal/security"
	"github.com/hitoshi/mentorhub/internal/source"
)

// excerptMaxLen は抜粋の最大文字数。
const excerptMaxLen = 200

// wordsPerMinute は読了時間推定に使う1分あたりの語数。
const wordsPerMinute = 200

// BlogSource はサイトのRSSフィードからブログ記事を取得するアダプタ。
// 記事本文はサニタイズしてから返す。
type BlogSource struct {
	feedURL    string
	httpClient *http.Client
	sanitizer  security.ContentSanitizerService
}

// NewBlogSource はBlogSourceを生成する。
func NewBlogSource(feedURL string, httpClient *http.Client, sanitizer security.ContentSanitizerService) *BlogSource {
	return &BlogSource{
		feedURL:    feedURL,
		httpClient: httpClient,
		sanitizer:  sanitizer,
	}
}

// ListPosts はRSSフィードをフェッチ・パースして記事一覧を返す。
func (s *BlogSource) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from feed", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	parser := gofeed.NewParser()
	parsed, err := parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]model.BlogPost, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		if item == nil {
			continue
		}
		posts = append(posts, s.convertItem(int64(i+1), item))
	}
	return posts, nil
}

// GetPostBySlug はフィード内からスラッグ一致の記事を検索する。
func (s *BlogSource) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// convertItem はgofeedの記事をドメインモデルへ変換する。
// 1. 本文（Content優先、なければDescription）をサニタイズ
// 2. 抜粋をHTMLからテキスト抽出して切り詰め
// 3. スラッグはリンクのパス末尾、なければタイトルから生成
func (s *BlogSource) convertItem(id int64, item *gofeed.Item) model.BlogPost {
	raw := item.Content
	if raw == "" {
		raw = item.Description
	}
	content := s.sanitizer.Sanitize(raw)

	excerpt := ExtractExcerpt(item.Description, excerptMaxLen)
	if excerpt == "" {
		excerpt = ExtractExcerpt(raw, excerptMaxLen)
	}

	post := model.BlogPost{
		ID:       id,
		Slug:     slugFromLink(item.Link, item.Title),
		Title:    item.Title,
		Excerpt:  excerpt,
		Content:  content,
		ReadTime: estimateReadTime(content),
		Category: firstCategory(item.Categories),
		Tags:     item.Categories,
	}

	if item.Author != nil {
		post.Author = item.Author.Name
	}
	if post.Author == "" && len(item.Authors) > 0 && item.Authors[0] != nil {
		post.Author = item.Authors[0].Name
	}

	if item.PublishedParsed != nil {
		post.Date = item.PublishedParsed.Format("January 2, 2006")
	} else if item.UpdatedParsed != nil {
		post.Date = item.UpdatedParsed.Format("January 2, 2006")
	}

	if item.Image != nil {
		post.Image = item.Image.URL
	}

	return post
}

// slugFromLink は記事URLのパス末尾をスラッグとして取り出す。
func slugFromLink(link, title string) string {
	if link != "" {
		if parsed, err := url.Parse(link); err == nil {
			segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
			if last := segments[len(segments)-1]; last != "" {
				return last
			}
		}
	}
	return source.Slugify(title)
}

// estimateReadTime は本文の語数から読了時間を推定する。
func estimateReadTime(content string) string {
	words := len(strings.Fields(ExtractExcerpt(content, -1)))
	minutes := words / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func firstCategory(categories []string) string {
	if len(categories) > 0 {
		return categories[0]
	}
	return ""
}
