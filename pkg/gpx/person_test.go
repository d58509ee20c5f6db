package gpx

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"
)

func TestLoadPersonNameOnly(t *testing.T) {
	element := parseTestElement(t, `<author><name>Jane</name></author>`)

	person, err := LoadPerson(element, DefaultReaderSettings())
	if err != nil {
		t.Fatalf("load person: %v", err)
	}

	if person.Name == nil || *person.Name != "Jane" {
		t.Fatalf("expected name Jane, got %v", person.Name)
	}
	if person.Email != nil {
		t.Fatalf("absent email must stay nil, got %v", person.Email)
	}
	if person.Link != nil {
		t.Fatalf("absent link must stay nil, got %v", person.Link)
	}
}

func TestPersonSaveOmitsAbsentFields(t *testing.T) {
	name := "Jane"
	person := &Person{Name: &name}

	saved := encodeToString(t, func(encoder *xml.Encoder) error {
		return person.Save(encoder, "author")
	})

	expected := `<author><name>Jane</name></author>`
	if saved != expected {
		t.Fatalf("expected %s, got %s", expected, saved)
	}
}

func TestPersonAbsencePreservation(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"all absent", `<author></author>`},
		{"name only", `<author><name>Jane</name></author>`},
		{"empty name is not absence", `<author><name></name></author>`},
		{"full", `<author><name>Jane</name><email id="jane" domain="example.com"/><link href="https://example.com"><text>Jane's site</text></link></author>`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			person, err := LoadPerson(parseTestElement(t, test.source), DefaultReaderSettings())
			if err != nil {
				t.Fatalf("load person: %v", err)
			}

			saved := encodeToString(t, func(encoder *xml.Encoder) error {
				return person.Save(encoder, "author")
			})

			reloaded, err := LoadPerson(parseTestElement(t, saved), DefaultReaderSettings())
			if err != nil {
				t.Fatalf("reload person: %v", err)
			}

			if (person.Name == nil) != (reloaded.Name == nil) {
				t.Fatalf("name absence not preserved through %s", saved)
			}
			if person.Name != nil && *person.Name != *reloaded.Name {
				t.Fatalf("expected name %q, got %q", *person.Name, *reloaded.Name)
			}
			if (person.Email == nil) != (reloaded.Email == nil) {
				t.Fatalf("email absence not preserved through %s", saved)
			}
			if person.Email != nil && *person.Email != *reloaded.Email {
				t.Fatalf("expected email %s, got %s", person.Email, reloaded.Email)
			}
			if (person.Link == nil) != (reloaded.Link == nil) {
				t.Fatalf("link absence not preserved through %s", saved)
			}
		})
	}
}

func TestLoadPersonNilPropagation(t *testing.T) {
	person, err := LoadPerson(nil, DefaultReaderSettings())
	if err != nil || person != nil {
		t.Fatalf("nil element must load as nil without error, got %v %v", person, err)
	}
}

func TestLoadPersonIgnoresForeignChildren(t *testing.T) {
	element := parseTestElement(t, `<author><x:nickname xmlns:x="https://example.com/x">JJ</x:nickname><name>Jane</name></author>`)

	person, err := LoadPerson(element, DefaultReaderSettings())
	if err != nil {
		t.Fatalf("foreign children must be ignored, not rejected: %v", err)
	}
	if person.Name == nil || *person.Name != "Jane" {
		t.Fatalf("expected name Jane, got %v", person.Name)
	}
}

func TestLoadEmailMandatoryAttributes(t *testing.T) {
	_, err := LoadEmail(parseTestElement(t, `<email id="jane"/>`), DefaultReaderSettings())

	var schemaError *SchemaViolationError
	if !errors.As(err, &schemaError) {
		t.Fatalf("expected SchemaViolationError for missing domain, got %v", err)
	}

	email, err := LoadEmail(parseTestElement(t, `<email id="jane" domain="example.com"/>`), DefaultReaderSettings())
	if err != nil {
		t.Fatalf("load email: %v", err)
	}
	if email.String() != "jane@example.com" {
		t.Fatalf("expected jane@example.com, got %s", email)
	}
}

func TestLoadLink(t *testing.T) {
	link, err := LoadLink(parseTestElement(t, `<link href="https://example.com/trail"><text>Trail notes</text><type>text/html</type></link>`), DefaultReaderSettings())
	if err != nil {
		t.Fatalf("load link: %v", err)
	}

	if link.HRef != "https://example.com/trail" {
		t.Fatalf("expected href, got %q", link.HRef)
	}
	if link.Text == nil || *link.Text != "Trail notes" {
		t.Fatalf("expected text, got %v", link.Text)
	}
	if link.Type == nil || *link.Type != "text/html" {
		t.Fatalf("expected type, got %v", link.Type)
	}

	if _, err := LoadLink(parseTestElement(t, `<link><text>No href</text></link>`), DefaultReaderSettings()); err == nil {
		t.Fatalf("expected error for missing href")
	}

	saved := encodeToString(t, link.Save)
	if !strings.Contains(saved, `href="https://example.com/trail"`) {
		t.Fatalf("expected href attribute in %s", saved)
	}
}
