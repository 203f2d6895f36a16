package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"wardrobeapi/models"
	"wardrobeapi/services"

	"github.com/sirupsen/logrus"
)

const (
	planTemperature = 0.5
	planMaxTokens   = 3000
)

type Planner struct {
	Provider services.LLMProvider
}

func NewPlanner(provider services.LLMProvider) *Planner {
	return &Planner{Provider: provider}
}

func (p *Planner) Ready() error {
	if err := p.Provider.Ready(); err != nil {
		return configError(err)
	}
	return nil
}

// Plan asks the model for a seven day plan over items. Only the day count is
// checked: ids, weekday uniqueness and the repeat limit are left to the model.
func (p *Planner) Plan(ctx context.Context, items []models.ClothingItem, prefs models.Preferences) (*models.WeeklyPlan, error) {
	plan, err := p.plan(ctx, items, prefs)
	if err != nil {
		gwErr := asGatewayError(err)
		report("plan", gwErr, logrus.Fields{"items": len(items), "style": prefs.Style})
		return nil, gwErr
	}
	return plan, nil
}

func (p *Planner) plan(ctx context.Context, items []models.ClothingItem, prefs models.Preferences) (*models.WeeklyPlan, error) {
	if err := p.Ready(); err != nil {
		return nil, err
	}
	if err := models.CheckWardrobeSize(len(items)); err != nil {
		return nil, WardrobeTooSmallError()
	}

	userText, err := planUserText(items, prefs)
	if err != nil {
		return nil, internalError(err)
	}
	content, err := p.Provider.Complete(ctx, services.ChatRequest{
		System:      planSystemPrompt,
		Text:        userText,
		Temperature: planTemperature,
		MaxTokens:   planMaxTokens,
	})
	if err != nil {
		return nil, providerError(err)
	}
	if content == "" {
		return nil, contentError()
	}

	var plan models.WeeklyPlan
	if err := json.Unmarshal([]byte(services.CleanAIResponseText(content)), &plan); err != nil {
		return nil, formatError(msgMalformedOutput, err)
	}
	if len(plan.Days) != len(models.Weekdays) {
		return nil, formatError(msgIncompletePlan, fmt.Errorf("plan has %d days", len(plan.Days)))
	}
	return &plan, nil
}
