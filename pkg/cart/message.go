package cart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/brioches/storefront/pkg/domain"
)

// EmptyCartMessage is sent when a customer opens the chat without any
// items picked.
const EmptyCartMessage = "¡Hola! Me interesa consultar sobre sus productos."

// BuildOrderMessage serializes the cart into the quotation request
// sent over WhatsApp: customer block (when present), numbered product
// list, and a computed summary. Deterministic for a given cart so the
// handoff text is reproducible.
func (c *Cart) BuildOrderMessage(customer *domain.CustomerData) string {
	if len(c.Items) == 0 {
		return EmptyCartMessage
	}

	var b strings.Builder
	b.WriteString("¡Hola! Me interesa solicitar una cotización para los siguientes productos:\n\n")

	if customer != nil {
		b.WriteString("👤 DATOS DEL CLIENTE:\n")
		fmt.Fprintf(&b, "• Nombre: %s\n", customer.Name)
		fmt.Fprintf(&b, "• Teléfono: %s\n", customer.Phone)
		fmt.Fprintf(&b, "• Dirección: %s\n", customer.Address)
		if customer.Email != "" {
			fmt.Fprintf(&b, "• Email: %s\n", customer.Email)
		}
		b.WriteString("\n")
	}

	b.WriteString("🛍️ PRODUCTOS SOLICITADOS:\n\n")
	for i, item := range c.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   • Cantidad: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   • Precio estimado: %s\n\n", item.Price)
	}

	totals := c.Total()
	b.WriteString("📊 RESUMEN DEL PEDIDO:\n")
	fmt.Fprintf(&b, "• Total de productos: %d\n", c.TotalItems())
	fmt.Fprintf(&b, "• Total estimado: Bs. %s", decimalComma(totals.VES))
	if totals.USD > 0 {
		fmt.Fprintf(&b, " ($%.2f)", totals.USD)
	}
	b.WriteString("\n\n")
	b.WriteString("¿Podrían confirmar disponibilidad, precios exactos y tiempo de entrega? ¡Gracias!")

	return b.String()
}

// WhatsAppLink builds the deep link that opens a chat with the bakery
// pre-filled with the message. Fire-and-forget: there is no delivery
// confirmation channel.
func WhatsAppLink(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}

func decimalComma(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
