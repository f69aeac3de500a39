package service

import (
	"EcoLoyalty/internal/pkg/facebook"
	"EcoLoyalty/internal/pkg/scoreapi"
	"regexp"
	"strings"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// topicKeywords 关键词到主题的映射表，按优先级排列
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"raincoat", []string{"raincoat", "rain gear", "waterproof"}},
	{"fashion", []string{"style", "outfit", "fashion", "clothing"}},
	{"kids", []string{"kids", "children", "child"}},
	{"weather", []string{"weather", "sunny", "rainy", "cloudy"}},
	{"outdoor", []string{"outdoor", "hiking", "camping", "adventure"}},
}

// extractHashtags 提取消息中的全部话题标签
func extractHashtags(message string) []string {
	return hashtagPattern.FindAllString(message, -1)
}

// stripHashtags 去掉话题标签后的纯文案
func stripHashtags(message string) string {
	return strings.TrimSpace(hashtagPattern.ReplaceAllString(message, ""))
}

// extractImageURLs 按附件顺序收集图片地址
func extractImageURLs(attachments facebook.PostAttachments) []string {
	var imageURLs []string
	for _, attachment := range attachments.Data {
		if attachment.Media.Image.Src != "" {
			imageURLs = append(imageURLs, attachment.Media.Image.Src)
		}
	}
	return imageURLs
}

// classifyTopic 关键词匹配主题，未命中时回退到活动主题
func classifyTopic(message string, fallback string) string {
	lowerMessage := strings.ToLower(message)
	for _, entry := range topicKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowerMessage, keyword) {
				return entry.topic
			}
		}
	}
	return fallback
}

// buildContentData 将帖子详情转换为打分服务的请求体
func buildContentData(meta *facebook.PostMetadata, campaignTopic string) *scoreapi.ContentData {
	return &scoreapi.ContentData{
		Content: scoreapi.ContentBody{
			Caption:   stripHashtags(meta.Message),
			Hashtags:  extractHashtags(meta.Message),
			ImageURLs: extractImageURLs(meta.Attachments),
		},
		Topic: classifyTopic(meta.Message, campaignTopic),
	}
}
