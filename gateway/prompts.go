package gateway

import (
	"encoding/json"
	"fmt"

	"wardrobeapi/models"
)

const classifySystemPrompt = `You are a professional clothing recognition assistant. Analyze the clothing photos the user uploads and return strict JSON.

Requirements:
1. Return pure JSON only, with no explanation text.
2. Every item must contain the fields: id, imageDataUrl, primary, secondary, seasons, colors, styleTags, notes.
3. primary must be "top" or "bottom".
4. secondary must be "inner", "outer" or "unknown".
5. seasons is an array with values from "spring", "summer", "autumn", "winter", "all-season".
6. colors is an array of color names (for example "black", "white", "grey").
7. styleTags is an array of style tags (for example "commute", "business", "casual", "minimal").
8. notes is optional, a short remark such as "wool coat" or "leather boots".
9. If you are unsure about a field, use "unknown" or an empty array. Do not make things up.
10. Return one item per photo, in the order the photos were given.

Example:
{
  "items": [
    {
      "id": "item_1",
      "imageDataUrl": "original data URL",
      "primary": "top",
      "secondary": "outer",
      "seasons": ["autumn", "winter"],
      "colors": ["black"],
      "styleTags": ["business", "commute", "minimal"],
      "notes": "suit jacket"
    }
  ]
}`

const planSystemPrompt = `You are a professional outfit consultant. Build a one week (Monday to Sunday) outfit plan from the user's wardrobe.

Requirements:
1. Return pure JSON only, with no explanation text.
2. The format must be:
{
  "days": [
    {
      "day": "mon",
      "topId": "item id",
      "bottomId": "item id",
      "outerId": "optional outerwear id",
      "reason": "1-3 sentences explaining the outfit"
    }
  ]
}
3. day must be one of "mon", "tue", "wed", "thu", "fri", "sat", "sun", and every day appears exactly once.
4. topId must reference an item with primary="top".
5. bottomId must reference an item with primary="bottom".
6. outerId is optional; add it when a suitable item with secondary="outer" exists.
7. Do not use any single item more than (repeat limit + 1) times in the week, where the repeat limit is given in the preferences. A neutral black, white or grey basic may be used one extra time beyond that.
8. reason: 1-3 sentences on why the pieces work together, emphasising a clean, capable look and colour harmony.
9. Favour the requested style.
10. Keep colour combinations harmonious and avoid overly loud outfits.

Return strictly the JSON format above with no extra text.`

func classifyUserText(n int) string {
	return fmt.Sprintf("Please analyze these %d clothing photos and return the recognition result as JSON.", n)
}

func planUserText(items []models.ClothingItem, prefs models.Preferences) (string, error) {
	wardrobe, err := json.MarshalIndent(models.Simplify(items), "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`My wardrobe contains the following items:
%s

Preferences:
- Style: %s
- Repeat limit per item: %d (at most %d uses, %d for neutral black/white/grey basics)

Please build my outfit plan for the week (Monday to Sunday).`, wardrobe, prefs.Style, prefs.RepeatLimit, prefs.RepeatLimit+1, prefs.RepeatLimit+2), nil
}
