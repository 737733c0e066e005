package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/cybernest/cybernest/petsim"
)

// CyberPet is the one-per-user pet aggregate row. The whole simulation state
// is a single JSON document so every operation is a load-mutate-save of one
// row; Version backs the optimistic concurrency check on save.
type CyberPet struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Version   int            `gorm:"default:0" json:"-"`
	State     datatypes.JSON `json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// DecodeState unmarshals the aggregate document and hydrates defaults so
// callers always see fully-populated fields.
func (c *CyberPet) DecodeState() (*petsim.Pet, error) {
	pet := &petsim.Pet{}
	if len(c.State) > 0 {
		if err := json.Unmarshal(c.State, pet); err != nil {
			return nil, err
		}
	}
	pet.Hydrate()
	return pet, nil
}

// SetState marshals the aggregate back into the row.
func (c *CyberPet) SetState(pet *petsim.Pet) error {
	raw, err := json.Marshal(pet)
	if err != nil {
		return err
	}
	c.State = datatypes.JSON(raw)
	return nil
}
