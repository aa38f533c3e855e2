package v1

import (
	"github.com/spendbase/backend/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month string `uri:"month" binding:"required" example:"2025-07"` // Year and month in YYYY-MM format
}
