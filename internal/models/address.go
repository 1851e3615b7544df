package models

type Address struct {
	ID           string `json:"id"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Complement   string `json:"complement,omitempty"`
	IsDefault    bool   `json:"is_default"`
}

type AddressRequest struct {
	Street       string `json:"street" validate:"required,max=200"`
	Number       string `json:"number" validate:"required,max=20"`
	Neighborhood string `json:"neighborhood" validate:"required,max=100"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,len=2,alpha"`
	Zip          string `json:"zip" validate:"required"`
	Complement   string `json:"complement,omitempty" validate:"omitempty,max=200"`
	IsDefault    bool   `json:"is_default"`
}

type UpdateAddressRequest struct {
	Street       *string `json:"street,omitempty" validate:"omitempty,max=200"`
	Number       *string `json:"number,omitempty" validate:"omitempty,max=20"`
	Neighborhood *string `json:"neighborhood,omitempty" validate:"omitempty,max=100"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State        *string `json:"state,omitempty" validate:"omitempty,len=2,alpha"`
	Zip          *string `json:"zip,omitempty"`
	Complement   *string `json:"complement,omitempty" validate:"omitempty,max=200"`
}

// PickDefaultAddress returns the flagged default, else the first address, else "".
func PickDefaultAddress(addresses []Address) string {
	for _, a := range addresses {
		if a.IsDefault {
			return a.ID
		}
	}

	if len(addresses) > 0 {
		return addresses[0].ID
	}

	return ""
}

func FindAddress(addresses []Address, id string) (Address, bool) {
	for _, a := range addresses {
		if a.ID == id {
			return a, true
		}
	}

	return Address{}, false
}
