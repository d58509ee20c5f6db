package gpx

import (
	"encoding/xml"
	"fmt"
)

// Email is an address split into its id and domain halves, the way the
// schema stores it.
type Email struct {
	ID     string
	Domain string
}

func LoadEmail(element *Element, settings *ReaderSettings) (*Email, error) {
	if element == nil {
		return nil, nil
	}

	id, err := requiredAttr(element, "email", "id")
	if err != nil {
		return nil, err
	}

	domain, err := requiredAttr(element, "email", "domain")
	if err != nil {
		return nil, err
	}

	return &Email{ID: id, Domain: domain}, nil
}

func (email *Email) Save(encoder *xml.Encoder) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "email"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "id"}, Value: email.ID},
			{Name: xml.Name{Local: "domain"}, Value: email.Domain},
		},
	}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	return encoder.EncodeToken(start.End())
}

func (email *Email) String() string {
	return fmt.Sprintf("%s@%s", email.ID, email.Domain)
}
