package entities

import "time"

type Recommendation struct {
	RecID         uint     `gorm:"primaryKey" json:"rec_id"`
	FarmID        uint     `json:"farm_id" gorm:"index"`
	Version       int      `json:"version"`
	Fertilizer    string   `json:"fertilizer"` // primary, from the classifier
	Secondary     string   `json:"secondary"`
	Confidence    float64  `json:"confidence"`
	AreaHectares  float64  `json:"area_hectares"`
	TotalCost     int      `json:"total_cost"`
	Deficiency    []string `gorm:"serializer:json" json:"deficiency,omitempty"`
	DetailJSON    string   `json:"detail_json"`
	CreatedAt     time.Time

	// not persisted: advisory articles attached by the service for the response
	SuggestedArticles []ArticleRef `gorm:"-" json:"suggested_articles,omitempty"`
}

type ArticleRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
