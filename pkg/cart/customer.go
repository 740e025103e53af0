package cart

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/brioches/storefront/pkg/domain"
)

// Venezuelan mobile and regional landline prefixes accepted on the
// checkout form.
var phoneRe = regexp.MustCompile(
	`^(0414|0424|0412|0416|0426|0238|0212|0251|0261|0271|0281|0287|0291|0295|04\d{2})\d{7}$`)

var validate = validator.New()

// ValidateCustomer checks the checkout contact block and returns
// per-field error messages. An empty map means the data is valid and
// the checkout may proceed to dispatch.
func ValidateCustomer(c domain.CustomerData) map[string]string {
	errs := make(map[string]string)

	if err := validate.Struct(c); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Name":
				errs["name"] = "El nombre es requerido"
			case "Phone":
				errs["phone"] = "El teléfono es requerido"
			case "Address":
				errs["address"] = "La dirección es requerida"
			case "Email":
				errs["email"] = "Formato de email inválido"
			}
		}
	}

	if _, found := errs["phone"]; !found && c.Phone != "" {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(c.Phone)
		if !phoneRe.MatchString(cleaned) {
			errs["phone"] = "Formato de teléfono inválido (ej: 0414-1234567)"
		}
	}

	return errs
}
