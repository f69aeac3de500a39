package scoreapi

// ContentBody 提交打分的内容主体
type ContentBody struct {
	Caption   string   `json:"caption"`
	Hashtags  []string `json:"hashtags"`
	ImageURLs []string `json:"image_urls"`
}

// ContentData analyze 接口请求体
type ContentData struct {
	Content ContentBody `json:"content"`
	Topic   string      `json:"topic"`
}

type ScoreAnalysis struct {
	TextScore        float64  `json:"text_score"`
	VisualScore      float64  `json:"visual_score"`
	Reasoning        string   `json:"reasoning"`
	DetectedElements []string `json:"detected_elements"`
}

// ScoreResponse analyze 接口响应体
type ScoreResponse struct {
	RelevanceScore   float64       `json:"relevance_score"`
	Confidence       float64       `json:"confidence"`
	Analysis         ScoreAnalysis `json:"analysis"`
	ProcessingTimeMs float64       `json:"processing_time_ms"`
}
