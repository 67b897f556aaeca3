package api

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inmotionhq/inmotion/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// optionalUint distinguishes an absent JSON key from an explicit null,
// which patch handlers need to clear nullable link columns.
type optionalUint struct {
	present bool
	value   *uint
}

func (field *optionalUint) UnmarshalJSON(data []byte) error {
	field.present = true
	if string(data) == "null" {
		field.value = nil
		return nil
	}
	return json.Unmarshal(data, &field.value)
}

// parseOptionalDateQuery reads a YYYY-MM-DD query parameter, returning
// nil when the parameter is absent.
func parseOptionalDateQuery(c *fiber.Ctx, name string, location *time.Location) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	day, err := services.ParseDate(raw, location)
	if err != nil {
		return nil, false
	}
	return &day, true
}

func parseDateParam(raw string, location *time.Location) (time.Time, error) {
	return services.ParseDate(raw, location)
}
