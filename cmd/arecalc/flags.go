package main

import (
	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// decimalValue adapts a decimal.Decimal to the pflag.Value interface
type decimalValue struct{ d *decimal.Decimal }

func newDecimalValue(d *decimal.Decimal, def string) *decimalValue {
	*d = decimal.RequireFromString(def)
	return &decimalValue{d: d}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

// categoryValue parses an annex number or name into a domain.Category
type categoryValue struct{ c *domain.Category }

func newCategoryValue(c *domain.Category, def domain.Category) *categoryValue {
	*c = def
	return &categoryValue{c: c}
}

func (v *categoryValue) String() string {
	if v.c == nil {
		return ""
	}
	return v.c.String()
}

func (v *categoryValue) Set(s string) error {
	c, err := domain.ParseCategory(s)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

func (v *categoryValue) Type() string { return "category" }
