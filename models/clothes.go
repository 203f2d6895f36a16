package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type PrimaryCategory string

const (
	PrimaryTop    PrimaryCategory = "top"
	PrimaryBottom PrimaryCategory = "bottom"
)

type SecondaryCategory string

const (
	SecondaryInner   SecondaryCategory = "inner"
	SecondaryOuter   SecondaryCategory = "outer"
	SecondaryUnknown SecondaryCategory = "unknown"
)

type Season string

const (
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonAutumn    Season = "autumn"
	SeasonWinter    Season = "winter"
	SeasonAllSeason Season = "all-season"
)

var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAllSeason}

// Category is the user-facing closet bucket. It is independent from
// Primary/Secondary: it is inferred once when the item enters the closet and
// can be changed by the user afterwards.
type Category string

const (
	CategoryOuterwear Category = "outerwear"
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
	CategoryUnknown   Category = "unknown"
)

// Categories lists every bucket in display order.
var Categories = []Category{
	CategoryOuterwear,
	CategoryTop,
	CategoryBottom,
	CategoryShoes,
	CategoryAccessory,
	CategoryUnknown,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type DayOfWeek string

const (
	Monday    DayOfWeek = "mon"
	Tuesday   DayOfWeek = "tue"
	Wednesday DayOfWeek = "wed"
	Thursday  DayOfWeek = "thu"
	Friday    DayOfWeek = "fri"
	Saturday  DayOfWeek = "sat"
	Sunday    DayOfWeek = "sun"
)

var Weekdays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type ClothingItem struct {
	ID           string            `json:"id"`
	ImageDataURL string            `json:"imageDataUrl"`
	Primary      PrimaryCategory   `json:"primary"`
	Secondary    SecondaryCategory `json:"secondary"`
	Seasons      Seasons           `json:"seasons"`
	Colors       Labels            `json:"colors"`
	StyleTags    Labels            `json:"styleTags"`
	Notes        string            `json:"notes,omitempty"`
	Category     Category          `json:"category,omitempty"`
}

// SimplifiedItem is what the planner sees of a garment: no image payload and
// no closet bucket.
type SimplifiedItem struct {
	ID        string            `json:"id"`
	Primary   PrimaryCategory   `json:"primary"`
	Secondary SecondaryCategory `json:"secondary"`
	Seasons   Seasons           `json:"seasons"`
	Colors    Labels            `json:"colors"`
	StyleTags Labels            `json:"styleTags"`
	Notes     string            `json:"notes,omitempty"`
}

func Simplify(items []ClothingItem) []SimplifiedItem {
	simplified := make([]SimplifiedItem, 0, len(items))
	for _, item := range items {
		simplified = append(simplified, SimplifiedItem{
			ID:        item.ID,
			Primary:   item.Primary,
			Secondary: item.Secondary,
			Seasons:   item.Seasons,
			Colors:    item.Colors,
			StyleTags: item.StyleTags,
			Notes:     item.Notes,
		})
	}
	return simplified
}

type OutfitDay struct {
	Day      DayOfWeek `json:"day"`
	TopID    string    `json:"topId"`
	BottomID string    `json:"bottomId"`
	OuterID  string    `json:"outerId,omitempty"`
	Reason   string    `json:"reason"`
}

type WeeklyPlan struct {
	Days []OutfitDay `json:"days"`
}

type Preferences struct {
	Style       string `json:"style" validate:"max=100"`
	RepeatLimit int    `json:"repeatLimit" validate:"min=0,max=7"`
}

func DefaultPreferences() Preferences {
	return Preferences{Style: "commute", RepeatLimit: 1}
}

// MinWardrobeSize is the smallest closet that can in principle cover a week
// with one top and one bottom per day.
const MinWardrobeSize = 7

var ErrWardrobeTooSmall = fmt.Errorf("at least %d clothing items are needed to generate a weekly plan", MinWardrobeSize)

// CheckWardrobeSize is the single size gate shared by the plan endpoint, the
// closet plan view and the CLI.
func CheckWardrobeSize(n int) error {
	if n < MinWardrobeSize {
		return ErrWardrobeTooSmall
	}
	return nil
}

// Labels is a free-text label list. Models sometimes answer "unknown" or a bare
// string where a list is expected, so decoding accepts both forms; encoding
// always produces an array.
type Labels []string

func (l Labels) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *Labels) UnmarshalJSON(data []byte) error {
	list, err := decodeLabels(data)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

type Seasons []Season

func (s Seasons) MarshalJSON() ([]byte, error) {
	labels := make(Labels, 0, len(s))
	for _, season := range s {
		labels = append(labels, string(season))
	}
	return labels.MarshalJSON()
}

func (s *Seasons) UnmarshalJSON(data []byte) error {
	list, err := decodeLabels(data)
	if err != nil {
		return err
	}
	seasons := make(Seasons, 0, len(list))
	for _, value := range list {
		seasons = append(seasons, Season(value))
	}
	*s = seasons
	return nil
}

var errLabelShape = errors.New("expected a list of strings")

func decodeLabels(data []byte) ([]string, error) {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		return list, nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, errLabelShape
	}
	single = strings.TrimSpace(single)
	if single == "" || strings.EqualFold(single, "unknown") {
		return []string{}, nil
	}
	return []string{single}, nil
}
