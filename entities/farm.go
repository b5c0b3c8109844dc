package entities

import "time"

type Farm struct {
	FarmID       uint      `gorm:"primaryKey" json:"farm_id"`
	UserID       string    `json:"user_id" gorm:"index"`
	Name         string    `json:"name"`
	CropType     string    `json:"crop_type"` // Paddy|Wheat|Maize|Sugarcane|Cotton|...
	SoilType     string    `json:"soil_type"` // Black|Clayey|Loamy|Red|Sandy
	FieldSize    float64   `json:"field_size"`
	SizeUnit     string    `json:"size_unit"` // hectares|acres|bigha
	Village      string    `json:"village"`
	District     string    `json:"district"`
	State        string    `json:"state"`
	SowingDate   time.Time `json:"sowing_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
