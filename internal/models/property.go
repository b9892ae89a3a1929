package models

type Property struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	OrganizationID *string  `json:"organization_id,omitempty"`
	Address        string   `json:"address"`
	PropertyType   string   `json:"property_type"`
	Furnished      bool     `json:"furnished"`
	SurfaceArea    *float64 `json:"surface_area,omitempty"`
	Rooms          *int     `json:"rooms,omitempty"`
	MaxOccupants   int      `json:"max_occupants"`
	Description    *string  `json:"description,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func (p Property) GetID() string { return p.ID }
