package models

import (
	"time"
)

// Validate checks if the comment meets all validation requirements. On
// failure it returns a FieldErrors map.
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fieldErrors(err)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation.
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}
