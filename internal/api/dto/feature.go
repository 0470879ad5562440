package dto

type FeatureResponse struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ListFeaturesResponse struct {
	Features []FeatureResponse `json:"features"`
}
