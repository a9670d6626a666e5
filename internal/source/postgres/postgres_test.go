package postgres

import (
	"testing"

	"github.com/hitoshi/mentorhub/internal/source"
)

// 各アダプタがsourceインターフェースを満たすことを検証
func TestPostgresAdapters_ImplementInterfaces(t *testing.T) {
	var _ source.AuthSource = (*AuthSource)(nil)
	var _ source.MentorSource = (*MentorSource)(nil)
	var _ source.BlogSource = (*BlogSource)(nil)
	var _ source.StorySource = (*StorySource)(nil)
}

// コンストラクタが正しく初期化されることを検証
func TestNewSources_Initialize(t *testing.T) {
	if NewAuthSource(nil) == nil {
		t.Fatal("expected non-nil AuthSource")
	}
	if NewMentorSource(nil) == nil {
		t.Fatal("expected non-nil MentorSource")
	}
	if NewBlogSource(nil) == nil {
		t.Fatal("expected non-nil BlogSource")
	}
	if NewStorySource(nil) == nil {
		t.Fatal("expected non-nil StorySource")
	}
}
