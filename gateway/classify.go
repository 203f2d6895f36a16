package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wardrobeapi/models"
	"wardrobeapi/services"

	"github.com/sirupsen/logrus"
)

const (
	classifyTemperature = 0.3
	classifyMaxTokens   = 4000
)

type Classifier struct {
	Provider services.LLMProvider
	Now      func() time.Time
}

func NewClassifier(provider services.LLMProvider) *Classifier {
	return &Classifier{Provider: provider, Now: time.Now}
}

// Ready reports the configuration error every Classify call would fail with.
func (c *Classifier) Ready() error {
	if err := c.Provider.Ready(); err != nil {
		return configError(err)
	}
	return nil
}

type classifyReply struct {
	Items *[]models.ClothingItem `json:"items"`
}

// Classify sends all images to the model in one request and returns one
// ClothingItem per recognised garment. Item i always carries images[i] as its
// image and a fresh id, whatever the model echoed for those fields.
func (c *Classifier) Classify(ctx context.Context, images []string) ([]models.ClothingItem, error) {
	items, err := c.classify(ctx, images)
	if err != nil {
		gwErr := asGatewayError(err)
		report("classify", gwErr, logrus.Fields{"images": len(images)})
		return nil, gwErr
	}
	return items, nil
}

func (c *Classifier) classify(ctx context.Context, images []string) ([]models.ClothingItem, error) {
	if err := c.Ready(); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, InvalidImagesError()
	}
	for _, image := range images {
		if image == "" {
			return nil, InvalidImagesError()
		}
	}

	content, err := c.Provider.Complete(ctx, services.ChatRequest{
		System:      classifySystemPrompt,
		Text:        classifyUserText(len(images)),
		Images:      images,
		Temperature: classifyTemperature,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil {
		return nil, providerError(err)
	}
	if content == "" {
		return nil, contentError()
	}

	var reply classifyReply
	if err := json.Unmarshal([]byte(services.CleanAIResponseText(content)), &reply); err != nil {
		return nil, formatError(msgMalformedOutput, err)
	}
	if reply.Items == nil {
		return nil, formatError(msgMalformedOutput, fmt.Errorf("reply has no items"))
	}

	items := *reply.Items
	if len(items) != len(images) {
		logrus.WithFields(logrus.Fields{
			"images": len(images),
			"items":  len(items),
		}).Warn("classifier returned a different number of items than images")
	}

	millis := c.now().UnixMilli()
	for i := range items {
		if i < len(images) {
			items[i].ImageDataURL = images[i]
		}
		items[i].ID = fmt.Sprintf("item_%d_%d", millis, i)
	}
	return items, nil
}

func (c *Classifier) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func asGatewayError(err error) *Error {
	if gwErr, ok := err.(*Error); ok {
		return gwErr
	}
	return internalError(err)
}
