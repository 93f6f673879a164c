package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateOrderQR génère un QR de suivi de commande en base64 prêt à mettre
// dans <img src="...">. Le QR encode l'URL de la commande sur le storefront.
func GenerateOrderQR(appURL, orderID string) (string, error) {
	target := fmt.Sprintf("%s/orders/%s", appURL, orderID)

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
