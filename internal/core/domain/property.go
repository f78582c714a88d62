package domain

// PropertyType identifies the type of a database property.
// Values follow the external service's wire names.
type PropertyType string

// Writable property types.
const (
	// PropertyTypeTitle is the mandatory primary title column.
	PropertyTypeTitle PropertyType = "title"

	// PropertyTypeRichText stores free-form text.
	PropertyTypeRichText PropertyType = "rich_text"

	// PropertyTypeNumber stores numeric values.
	PropertyTypeNumber PropertyType = "number"

	// PropertyTypeCheckbox stores boolean values.
	PropertyTypeCheckbox PropertyType = "checkbox"

	// PropertyTypeSelect stores a single choice from an option list.
	PropertyTypeSelect PropertyType = "select"

	// PropertyTypeMultiSelect stores multiple choices from an option list.
	PropertyTypeMultiSelect PropertyType = "multi_select"

	// PropertyTypeURL stores a validated URL.
	PropertyTypeURL PropertyType = "url"

	// PropertyTypeEmail stores a validated email address.
	PropertyTypeEmail PropertyType = "email"

	// PropertyTypePhoneNumber stores a phone number.
	PropertyTypePhoneNumber PropertyType = "phone_number"

	// PropertyTypeDate stores a calendar date.
	PropertyTypeDate PropertyType = "date"
)

// Read-only system property types. These are maintained by the service
// and are never part of a write payload or an extraction prompt.
const (
	PropertyTypeCreatedTime    PropertyType = "created_time"
	PropertyTypeLastEditedTime PropertyType = "last_edited_time"
	PropertyTypeCreatedBy      PropertyType = "created_by"
	PropertyTypeLastEditedBy   PropertyType = "last_edited_by"
)

// IsValid returns true if the property type is recognised.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeTitle, PropertyTypeRichText, PropertyTypeNumber,
		PropertyTypeCheckbox, PropertyTypeSelect, PropertyTypeMultiSelect,
		PropertyTypeURL, PropertyTypeEmail, PropertyTypePhoneNumber,
		PropertyTypeDate, PropertyTypeCreatedTime, PropertyTypeLastEditedTime,
		PropertyTypeCreatedBy, PropertyTypeLastEditedBy:
		return true
	default:
		return false
	}
}

// IsReadOnly returns true for system-maintained types that must never
// be written or requested from the model.
func (t PropertyType) IsReadOnly() bool {
	switch t {
	case PropertyTypeCreatedTime, PropertyTypeLastEditedTime,
		PropertyTypeCreatedBy, PropertyTypeLastEditedBy:
		return true
	default:
		return false
	}
}

// IsEnumerated returns true for types carrying an option list.
func (t PropertyType) IsEnumerated() bool {
	return t == PropertyTypeSelect || t == PropertyTypeMultiSelect
}

// String returns the string representation.
func (t PropertyType) String() string {
	return string(t)
}

// SchemaProperty is one property definition within a schema snapshot.
type SchemaProperty struct {
	// ID is the service-assigned property identifier.
	ID string `json:"id"`

	// Name is the property name, unique within a snapshot.
	Name string `json:"name"`

	// Type is the property type.
	Type PropertyType `json:"type"`

	// Options lists the valid choices for enumerated types, in the
	// order the service reports them. Nil for other types.
	Options []string `json:"options,omitempty"`
}
