package models

type AddressType string

const (
	AddressOffice    AddressType = "OFFICE"
	AddressBilling   AddressType = "BILLING"
	AddressTransport AddressType = "TRANSPORT"
	AddressDriver    AddressType = "DRIVER"
)

type Address struct {
	ID           string      `json:"id,omitempty" bson:"id,omitempty" db:"id"`
	AddressLine1 string      `json:"addressLine1" bson:"address_line1" db:"address_line1"`
	AddressLine2 *string     `json:"addressLine2,omitempty" bson:"address_line2,omitempty" db:"address_line2"`
	AddressLine3 *string     `json:"addressLine3,omitempty" bson:"address_line3,omitempty" db:"address_line3"`
	City         string      `json:"city" bson:"city" db:"city"`
	State        string      `json:"state" bson:"state" db:"state"`
	PinCode      string      `json:"pinCode" bson:"pin_code" db:"pin_code"`
	Country      string      `json:"country" bson:"country" db:"country"`
	AddressType  AddressType `json:"addressType" bson:"address_type" db:"address_type"`
}

type Client struct {
	ID                string    `json:"id" bson:"_id,omitempty" db:"id"`
	CompanyName       string    `json:"companyName" bson:"company_name" db:"company_name"`
	ContactEmail      string    `json:"contactEmail" bson:"contact_email" db:"contact_email"`
	ContactPersonName string    `json:"contactPersonName" bson:"contact_person_name" db:"contact_person_name"`
	ContactNumber     string    `json:"contactNumber" bson:"contact_number" db:"contact_number"`
	AlternateContact  *string   `json:"alternateContact,omitempty" bson:"alternate_contact,omitempty" db:"alternate_contact"`
	GSTNumber         *string   `json:"gstNumber,omitempty" bson:"gst_number,omitempty" db:"gst_number"`
	Addresses         []Address `json:"addresses" bson:"addresses"`
}

// AddressByID looks up a stored address on the client. The second return is
// false when the id is absent from the list.
func (c *Client) AddressByID(id string) (*Address, bool) {
	for i := range c.Addresses {
		if c.Addresses[i].ID == id {
			return &c.Addresses[i], true
		}
	}
	return nil, false
}
