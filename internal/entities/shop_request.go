package entities

// ShopRequest is the body of admin create/update calls, the add form and
// seed file entries.
// OpeningHours and RegularHolidays stay nil when the field is omitted.
type ShopRequest struct {
	Name            string  `json:"name" yaml:"name" validate:"required"`
	Address         string  `json:"address" yaml:"address" validate:"required"`
	Lat             float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lng             float64 `json:"lng" yaml:"lng" validate:"gte=-180,lte=180"`
	Cashless        string  `json:"cashless" yaml:"cashless"`
	OpeningHours    *string `json:"opening_hours" yaml:"opening_hours"`
	RegularHolidays *string `json:"regular_holidays" yaml:"regular_holidays"`
}
