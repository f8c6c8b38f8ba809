package entity

// GradingScale input widget chegaralari (mamlakat shkalasida)
type GradingScale struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// CountryProfile mamlakat fanlari, baholash shkalasi va 0-10 ga o'tkazish koeffitsienti.
// Jarayon davomida o'zgarmaydi.
type CountryProfile struct {
	Name     string       `json:"name"`
	Subjects []string     `json:"subjects"`
	Scale    GradingScale `json:"scale"`
	// Factor canonical = raw * Factor
	Factor float64 `json:"factor"`
	// MaxLabel o'rtacha bahoni ko'rsatishda ishlatiladi, masalan "/5.0"
	MaxLabel string `json:"max_label"`
}
