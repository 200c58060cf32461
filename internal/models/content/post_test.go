package content

import (
	"reflect"
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestWithPostTitleSlugFollowsTitle(t *testing.T) {
	p := &BlogPost{}
	WithPostTitle("My First Post")(p)
	if p.Slug != "my-first-post" {
		t.Fatalf("slug = %q, want my-first-post", p.Slug)
	}

	// While the slug still derives from the title, renaming regenerates it.
	WithPostTitle("Renamed Post")(p)
	if p.Slug != "renamed-post" {
		t.Fatalf("slug = %q, want renamed-post", p.Slug)
	}

	// Once an author sets a slug manually, a retitle leaves it alone.
	WithPostSlug("custom-slug")(p)
	WithPostTitle("Yet Another Title")(p)
	if p.Slug != "custom-slug" {
		t.Fatalf("slug = %q, want custom-slug", p.Slug)
	}
}

func TestWithPostSlugNormalizes(t *testing.T) {
	p := &BlogPost{}
	WithPostSlug("My  Custom Slug!")(p)
	if p.Slug != "my-custom-slug" {
		t.Fatalf("slug = %q, want my-custom-slug", p.Slug)
	}
}

func TestWithPostPublishedDateStickiness(t *testing.T) {
	p := &BlogPost{}
	if p.PublishDate != nil {
		t.Fatal("new post should have no publish date")
	}

	WithPostPublished(true)(p)
	if p.PublishDate == nil {
		t.Fatal("first publish must stamp the publish date")
	}
	first := *p.PublishDate

	WithPostPublished(false)(p)
	if p.IsPublished {
		t.Fatal("unpublish must clear the flag")
	}
	if p.PublishDate == nil || !p.PublishDate.Equal(first) {
		t.Fatal("unpublish must keep the original publish date")
	}

	time.Sleep(time.Millisecond)
	WithPostPublished(true)(p)
	if !p.PublishDate.Equal(first) {
		t.Fatal("republish must not overwrite the original publish date")
	}
}

func TestWithPostContentSanitizes(t *testing.T) {
	p := &BlogPost{}
	WithPostContent(`<p>keep</p><script>alert("x")</script>`)(p)
	if p.Content != "<p>keep</p>" {
		t.Fatalf("content = %q, want script stripped", p.Content)
	}
}

func TestStaleSlugKeys(t *testing.T) {
	tests := []struct {
		name         string
		oldSlug      string
		wasPublished bool
		post         BlogPost
		want         []string
	}{
		{
			name:         "no change",
			oldSlug:      "my-post",
			wasPublished: true,
			post:         BlogPost{Slug: "my-post", IsPublished: true},
			want:         nil,
		},
		{
			name:         "slug renamed",
			oldSlug:      "old-slug",
			wasPublished: true,
			post:         BlogPost{Slug: "new-slug", IsPublished: true},
			want:         []string{"post:slug:old-slug"},
		},
		{
			name:         "unpublished",
			oldSlug:      "my-post",
			wasPublished: true,
			post:         BlogPost{Slug: "my-post", IsPublished: false},
			want:         []string{"post:slug:my-post"},
		},
		{
			name:         "renamed and unpublished",
			oldSlug:      "old-slug",
			wasPublished: true,
			post:         BlogPost{Slug: "new-slug", IsPublished: false},
			want:         []string{"post:slug:old-slug", "post:slug:new-slug"},
		},
		{
			name:         "draft stays draft",
			oldSlug:      "my-post",
			wasPublished: false,
			post:         BlogPost{Slug: "my-post", IsPublished: false},
			want:         nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := staleSlugKeys(tt.oldSlug, tt.wasPublished, &tt.post)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("staleSlugKeys = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewBlogPostViewDefaults(t *testing.T) {
	view := NewBlogPostView(&BlogPost{Title: "T", Slug: "t"})
	if view.Tags == nil {
		t.Error("tags must serialize as an empty array, not null")
	}
	if len(view.Tags) != 0 {
		t.Errorf("tags = %v, want empty", view.Tags)
	}
	if view.ReadTime != 1 {
		t.Errorf("readTime = %d, want floor of 1", view.ReadTime)
	}
}

func TestNewBlogPostViewReadTime(t *testing.T) {
	content := ""
	for i := 0; i < 450; i++ {
		content += "word "
	}
	view := NewBlogPostView(&BlogPost{Content: content, Tags: datatypes.NewJSONSlice([]string{"go"})})
	if view.ReadTime != 3 {
		t.Errorf("readTime = %d, want 3 for 450 words", view.ReadTime)
	}
	if len(view.Tags) != 1 || view.Tags[0] != "go" {
		t.Errorf("tags = %v, want [go]", view.Tags)
	}
}
