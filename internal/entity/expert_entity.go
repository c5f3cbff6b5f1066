package entity

// Expert is reference data. Nothing mutates it after the catalog is built.
type Expert struct {
	Id          string
	Name        string
	Title       string
	AvatarURL   string
	HourlyRate  float64
	Skills      []string
	Rating      float64
	ReviewCount int
	Bio         string
	Tags        []string
}
