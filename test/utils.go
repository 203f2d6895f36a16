package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"wardrobeapi/models"
	"wardrobeapi/services"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func NewJSONRequestRaw(method string, target string, json string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(json))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

// LLMMock is a scripted services.LLMProvider. Replies are consumed in order,
// the last one repeats.
type LLMMock struct {
	Replies           []string
	Err               error
	MissingCredential bool

	mu       sync.Mutex
	requests []services.ChatRequest
}

func NewLLMMock(replies ...string) *LLMMock {
	return &LLMMock{Replies: replies}
}

func (m *LLMMock) Name() string {
	return "mock"
}

func (m *LLMMock) Ready() error {
	if m.MissingCredential {
		return services.ErrMissingCredential
	}
	return nil
}

func (m *LLMMock) Complete(ctx context.Context, req services.ChatRequest) (string, error) {
	if err := m.Ready(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "", nil
	}
	i := len(m.requests) - 1
	if i >= len(m.Replies) {
		i = len(m.Replies) - 1
	}
	return m.Replies[i], nil
}

func (m *LLMMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *LLMMock) Requests() []services.ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]services.ChatRequest(nil), m.requests...)
}

// FakeImages returns n distinct PNG data URLs.
func FakeImages(n int) []string {
	images := make([]string, 0, n)
	for i := 0; i < n; i++ {
		images = append(images, services.EncodeDataURL("image/png", []byte(fmt.Sprintf("png-%d", i))))
	}
	return images
}

// FakeWardrobe returns n classified items alternating tops and bottoms, the
// first one being an outer layer.
func FakeWardrobe(n int) []models.ClothingItem {
	items := make([]models.ClothingItem, 0, n)
	images := FakeImages(n)
	for i := 0; i < n; i++ {
		item := models.ClothingItem{
			ID:           fmt.Sprintf("item_1700000000000_%d", i),
			ImageDataURL: images[i],
			Primary:      models.PrimaryTop,
			Secondary:    models.SecondaryInner,
			Seasons:      models.Seasons{models.SeasonAllSeason},
			Colors:       models.Labels{"black"},
			StyleTags:    models.Labels{"commute"},
			Category:     models.CategoryTop,
		}
		if i%2 == 1 {
			item.Primary = models.PrimaryBottom
			item.Secondary = models.SecondaryUnknown
			item.Category = models.CategoryBottom
		}
		if i == 0 {
			item.Secondary = models.SecondaryOuter
			item.Notes = "wool coat"
			item.Category = models.CategoryOuterwear
		}
		items = append(items, item)
	}
	return items
}

// ClassificationReply is a model answer describing n garments. The echoed ids
// and image URLs are deliberately wrong.
func ClassificationReply(n int, notes ...string) string {
	type replyItem struct {
		ID           string   `json:"id"`
		ImageDataURL string   `json:"imageDataUrl"`
		Primary      string   `json:"primary"`
		Secondary    string   `json:"secondary"`
		Seasons      []string `json:"seasons"`
		Colors       []string `json:"colors"`
		StyleTags    []string `json:"styleTags"`
		Notes        string   `json:"notes,omitempty"`
	}
	items := make([]replyItem, 0, n)
	for i := 0; i < n; i++ {
		item := replyItem{
			ID:           fmt.Sprintf("item_%d", i+1),
			ImageDataURL: "original data URL",
			Primary:      "top",
			Secondary:    "inner",
			Seasons:      []string{"autumn", "winter"},
			Colors:       []string{"black"},
			StyleTags:    []string{"commute"},
		}
		if i%2 == 1 {
			item.Primary = "bottom"
			item.Secondary = "unknown"
		}
		if i < len(notes) {
			item.Notes = notes[i]
		}
		items = append(items, item)
	}
	return JsonString(map[string]interface{}{"items": items})
}

// PlanReply is a model answer with the given number of days over items.
func PlanReply(items []models.ClothingItem, days int) string {
	var tops, bottoms []string
	for _, item := range items {
		if item.Primary == models.PrimaryBottom {
			bottoms = append(bottoms, item.ID)
		} else {
			tops = append(tops, item.ID)
		}
	}
	plan := models.WeeklyPlan{Days: []models.OutfitDay{}}
	for i := 0; i < days; i++ {
		day := models.OutfitDay{
			Day:    models.Weekdays[i%len(models.Weekdays)],
			Reason: "clean lines for the office",
		}
		if len(tops) > 0 {
			day.TopID = tops[i%len(tops)]
		}
		if len(bottoms) > 0 {
			day.BottomID = bottoms[i%len(bottoms)]
		}
		plan.Days = append(plan.Days, day)
	}
	return JsonString(plan)
}
