package rayid

import (
	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// HeaderName is the response header carrying the request's ray ID.
const HeaderName = "X-Ray-ID"

// New returns middleware that assigns a short unique ID to every request.
// The ID is stored in c.Locals("ray_id") and echoed in the response header so
// clients can reference it when reporting problems.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := gonanoid.New()
		if err != nil {
			// nanoid only fails when the OS entropy source does; carry on
			// without an ID rather than failing the request.
			return c.Next()
		}
		c.Locals("ray_id", id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
