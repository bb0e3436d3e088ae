package domain

import (
	"time"
)

type Expert struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
