package gpx

import (
	"encoding/xml"
	"fmt"
)

// Person is an author or copyright holder. All three fields are independently
// optional - absence is a meaningful state, not an error, and an absent field
// emits nothing on save.
type Person struct {
	Name  *string
	Email *Email
	Link  *Link
}

func LoadPerson(element *Element, settings *ReaderSettings) (*Person, error) {
	if element == nil {
		return nil, nil
	}

	person := &Person{}

	for _, child := range element.Children {
		switch child.Name.Local {
		case "name":
			name := child.CharData
			person.Name = &name
		case "email":
			email, err := LoadEmail(child, settings)
			if err != nil {
				return nil, err
			}
			person.Email = email
		case "link":
			link, err := LoadLink(child, settings)
			if err != nil {
				return nil, err
			}
			person.Link = link
		}
	}

	return person, nil
}

// Save emits the person under the given element name - the schema uses the
// same shape for both author and other person-valued elements.
func (person *Person) Save(encoder *xml.Encoder, name string) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if person.Name != nil {
		if err := writeLeaf(encoder, "name", *person.Name); err != nil {
			return err
		}
	}

	if person.Email != nil {
		if err := person.Email.Save(encoder); err != nil {
			return err
		}
	}

	if person.Link != nil {
		if err := person.Link.Save(encoder); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

func (person *Person) String() string {
	name := ""
	if person.Name != nil {
		name = *person.Name
	}

	return fmt.Sprintf("Person{%q %v %v}", name, person.Email, person.Link)
}
