package clients

// Client es la ficha postal/de contacto del dueño de los animales.
type Client struct {
	ID string

	Name         string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string // código de 2 letras (modelo US-céntrico)
	Zip          string
	Phone        string
	Email        string
}
