package domain

import "strings"

type Customer struct {
	ID   string `db:"customer_id" json:"customerID"`
	Name string `db:"name" json:"name"`
	Age  int32  `db:"age" json:"age"`
	City string `db:"city" json:"city"`
}

// CustomerUpdate carries the fields of a partial update. Nil fields are left untouched.
type CustomerUpdate struct {
	Name *string
	Age  *int32
	City *string
}

func (c *Customer) Validate() error {
	switch {
	case strings.TrimSpace(c.ID) == "":
		return Validationf("customerID is required")
	case strings.TrimSpace(c.Name) == "":
		return Validationf("name is required")
	case c.Age < 0:
		return Validationf("age must not be negative")
	case strings.TrimSpace(c.City) == "":
		return Validationf("city is required")
	}
	return nil
}

func (c *Customer) Apply(u CustomerUpdate) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Age != nil {
		c.Age = *u.Age
	}
	if u.City != nil {
		c.City = *u.City
	}
}
