package tripdata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidCriteria = errors.New("invalid filter criteria")

// Criteria is what the caller asks for: a city and optional month/day names.
// An empty Month or Day means no filter on that field.
type Criteria struct {
	City  string `validate:"required"`
	Month string `validate:"omitempty,oneof=january february march april may june"`
	Day   string `validate:"omitempty,oneof=monday tuesday wednesday thursday friday"`
}

var validate = validator.New()

func (c Criteria) Normalise() Criteria {
	return Criteria{
		City:  strings.ToLower(strings.TrimSpace(c.City)),
		Month: strings.ToLower(strings.TrimSpace(c.Month)),
		Day:   strings.ToLower(strings.TrimSpace(c.Day)),
	}
}

// Validate checks the closed month/day enumerations. It does not check that
// the city is registered; the loader does that.
func (c Criteria) Validate() error {
	err := validate.Struct(c.Normalise())
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var fields []string
		for _, fieldError := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s=%q", strings.ToLower(fieldError.Field()), fieldError.Value()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidCriteria, strings.Join(fields, ", "))
	}

	return fmt.Errorf("%w: %s", ErrInvalidCriteria, err)
}

func (c Criteria) String() string {
	month := c.Month
	if month == "" {
		month = "all"
	}
	day := c.Day
	if day == "" {
		day = "all"
	}
	return fmt.Sprintf("city=%s month=%s day=%s", c.City, month, day)
}
