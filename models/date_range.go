package models

import (
	"fmt"

	"github.com/mattwilkerson1121/Asinsights/utils"
)

// DateRange is an inclusive calendar range in YYYY-MM-DD form.
// End before Start is accepted as-is.
type DateRange struct {
	Start string `json:"start" binding:"required" example:"2024-11-05"`
	End   string `json:"end" binding:"required" example:"2024-12-05"`
}

// Validate checks that both bounds are calendar dates
func (r DateRange) Validate() error {
	if _, err := utils.ParseDate(r.Start); err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	if _, err := utils.ParseDate(r.End); err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	return nil
}

func (r DateRange) String() string {
	return r.Start + " to " + r.End
}
