package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brioches/storefront/pkg/domain"
)

func validCustomer() domain.CustomerData {
	return domain.CustomerData{
		Name:    "María Pérez",
		Phone:   "0414-1234567",
		Address: "Av. Bolívar, Caracas",
		Email:   "maria@example.com",
	}
}

func TestValidateCustomerOK(t *testing.T) {
	assert.Empty(t, ValidateCustomer(validCustomer()))
}

func TestValidateCustomerEmailOptional(t *testing.T) {
	c := validCustomer()
	c.Email = ""
	assert.Empty(t, ValidateCustomer(c))
}

func TestValidateCustomerFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.CustomerData)
		wantField string
	}{
		{"missing name", func(c *domain.CustomerData) { c.Name = "" }, "name"},
		{"missing phone", func(c *domain.CustomerData) { c.Phone = "" }, "phone"},
		{"missing address", func(c *domain.CustomerData) { c.Address = "" }, "address"},
		{"bad email", func(c *domain.CustomerData) { c.Email = "not-an-email" }, "email"},
		{"foreign phone", func(c *domain.CustomerData) { c.Phone = "+1 555 0100" }, "phone"},
		{"short phone", func(c *domain.CustomerData) { c.Phone = "0414-123" }, "phone"},
		{"bad prefix", func(c *domain.CustomerData) { c.Phone = "0999-1234567" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)

			errs := ValidateCustomer(c)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestValidateCustomerPhoneFormats(t *testing.T) {
	accepted := []string{
		"04141234567",
		"0414-1234567",
		"0414 123 45 67",
		"0212-1234567", // Caracas landline
		"04991234567",  // any 04xx mobile prefix
	}

	for _, phone := range accepted {
		c := validCustomer()
		c.Phone = phone
		assert.Empty(t, ValidateCustomer(c), "phone %q should be accepted", phone)
	}
}

func TestValidateCustomerCollectsAllErrors(t *testing.T) {
	errs := ValidateCustomer(domain.CustomerData{})

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "address")
}
