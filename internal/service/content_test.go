package service

import (
	"EcoLoyalty/internal/pkg/facebook"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHashtags(t *testing.T) {
	hashtags := extractHashtags("Love the new raincoat! #EcoDrizzle #Sustainable #kids2024")
	assert.Equal(t, []string{"#EcoDrizzle", "#Sustainable", "#kids2024"}, hashtags)

	assert.Empty(t, extractHashtags("no tags here"))
	assert.Empty(t, extractHashtags(""))
}

func TestStripHashtags(t *testing.T) {
	caption := stripHashtags("Love the new raincoat! #EcoDrizzle #Sustainable")
	assert.Equal(t, "Love the new raincoat!", caption)

	assert.Equal(t, "", stripHashtags("#only #tags"))
	assert.Equal(t, "plain message", stripHashtags("plain message"))
}

// 从文案中剥离的标签放回后，标签多重集应与原消息一致
func TestHashtagRoundTrip(t *testing.T) {
	messages := []string{
		"Just tried the amazing products! #EcoDrizzle #Sustainable",
		"#start middle #middle end #end",
		"repeated #tag and #tag again",
		"no hashtags at all",
	}

	for _, message := range messages {
		caption := stripHashtags(message)
		hashtags := extractHashtags(message)

		rebuilt := caption + " " + strings.Join(hashtags, " ")
		got := extractHashtags(rebuilt)

		sortedWant := append([]string(nil), hashtags...)
		sortedGot := append([]string(nil), got...)
		sort.Strings(sortedWant)
		sort.Strings(sortedGot)
		assert.Equal(t, sortedWant, sortedGot, "message: %s", message)
	}
}

func TestExtractImageURLs(t *testing.T) {
	attachments := facebook.PostAttachments{
		Data: []facebook.PostAttachment{
			{Media: facebook.AttachmentMedia{Image: facebook.MediaImage{Src: "https://cdn/a.jpg"}}},
			{Media: facebook.AttachmentMedia{Image: facebook.MediaImage{Src: ""}}},
			{Media: facebook.AttachmentMedia{Image: facebook.MediaImage{Src: "https://cdn/b.jpg"}}},
		},
	}

	urls := extractImageURLs(attachments)
	assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, urls)

	assert.Empty(t, extractImageURLs(facebook.PostAttachments{}))
}

func TestClassifyTopic(t *testing.T) {
	assert.Equal(t, "raincoat", classifyTopic("My new waterproof jacket", "general"))
	assert.Equal(t, "kids", classifyTopic("Great for the kids!", "general"))
	assert.Equal(t, "outdoor", classifyTopic("Perfect Hiking trail", "general"))
	// 多个主题命中时按优先级取第一个
	assert.Equal(t, "weather", classifyTopic("sunny day for camping", "general"))

	// 未命中关键词时回退到活动主题
	assert.Equal(t, "raincoat", classifyTopic("totally unrelated message", "raincoat"))
}

func TestBuildContentData(t *testing.T) {
	meta := &facebook.PostMetadata{
		ID:      "555_777",
		Message: "Love this #EcoDrizzle look",
		Attachments: facebook.PostAttachments{
			Data: []facebook.PostAttachment{
				{Media: facebook.AttachmentMedia{Image: facebook.MediaImage{Src: "https://cdn/a.jpg"}}},
			},
		},
	}

	content := buildContentData(meta, "raincoat")
	require.NotNil(t, content)
	assert.Equal(t, "Love this  look", content.Content.Caption)
	assert.Equal(t, []string{"#EcoDrizzle"}, content.Content.Hashtags)
	assert.Equal(t, []string{"https://cdn/a.jpg"}, content.Content.ImageURLs)
	assert.Equal(t, "raincoat", content.Topic)
}
