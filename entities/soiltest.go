package entities

import "time"

type SoilTest struct {
	TestID       uint      `gorm:"primaryKey" json:"test_id"`
	FarmID       uint      `gorm:"index" json:"farm_id"`
	Date         time.Time `json:"date"`
	SoilPH       *float64  `json:"soil_ph"`
	Nitrogen     *float64  `json:"nitrogen"`   // kg/ha
	Phosphorus   *float64  `json:"phosphorus"` // kg/ha
	Potassium    *float64  `json:"potassium"`  // kg/ha
	SoilMoisture *float64  `json:"soil_moisture"` // %
	Temperature  *float64  `json:"temperature"`   // °C
	Humidity     *float64  `json:"humidity"`      // %
	LabName      string    `json:"lab_name"`
	Note         string    `json:"note"`
	CreatedAt    time.Time
}
