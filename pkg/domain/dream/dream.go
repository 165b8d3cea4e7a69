package dream

import (
	"time"

	"github.com/google/uuid"
)

type Dream struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         string    `json:"user_id" gorm:"index;not null"`
	Title          string    `json:"title"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	Mood           string    `json:"mood"`
	Tags           string    `json:"tags"`
	Interpretation *string   `json:"interpretation,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (d Dream) TableName() string {
	return "public.dreams"
}

func (d Dream) HasInterpretation() bool {
	return d.Interpretation != nil && *d.Interpretation != ""
}
