package models

type AnalyzeIn struct {
	Images []string `json:"images"`
}

type AnalyzeOut struct {
	Items []ClothingItem `json:"items"`
}

type GeneratePlanIn struct {
	Items       []ClothingItem `json:"items"`
	Preferences *Preferences   `json:"preferences"`
}

type UploadItemsIn struct {
	Images []string `json:"images" validate:"required,min=1,dive,required"`
}

type RecategorizeIn struct {
	Category Category `json:"category" validate:"required,category"`
}

type GenerateClosetPlanIn struct {
	Preferences *Preferences `json:"preferences" validate:"omitempty"`
}

type ClosetGroupOut struct {
	Category Category       `json:"category"`
	Items    []ClothingItem `json:"items"`
}

type ClosetOut struct {
	Count  int              `json:"count"`
	Groups []ClosetGroupOut `json:"groups"`
}

type ResolvedDayOut struct {
	Day    DayOfWeek     `json:"day"`
	Top    *ClothingItem `json:"top"`
	Bottom *ClothingItem `json:"bottom"`
	Outer  *ClothingItem `json:"outer,omitempty"`
	Reason string        `json:"reason"`
}

type ResolvedPlanOut struct {
	Days []ResolvedDayOut `json:"days"`
}

type PlanViewOut struct {
	Plan        *ResolvedPlanOut `json:"plan"`
	CanGenerate bool             `json:"canGenerate"`
}
