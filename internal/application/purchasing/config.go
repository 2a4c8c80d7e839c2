package purchasing

import "time"

// Valores por defecto de una OC nueva.
const (
	DefaultDestination   = "ZONA RIEGO MALARGUE"
	DefaultDeliveryTerms = "-"
)

// Config parámetros del módulo de compras.
type Config struct {
	DefaultDestination   string
	DefaultDeliveryTerms string
	// Location zona horaria del organismo: define el año de numeración y la fecha de emisión.
	Location   *time.Location
	IssuerName string
	IssuerCUIT string
	// Now reloj inyectable; nil usa time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.DefaultDestination == "" {
		c.DefaultDestination = DefaultDestination
	}
	if c.DefaultDeliveryTerms == "" {
		c.DefaultDeliveryTerms = DefaultDeliveryTerms
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// today devuelve la fecha civil actual (medianoche) en la zona del organismo.
func (c Config) today() time.Time {
	now := c.Now().In(c.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location)
}
