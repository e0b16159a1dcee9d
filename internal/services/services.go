// Package services holds the business rules between the HTTP/GraphQL
// boundary and the repositories: uniqueness checks, reference checks,
// partial-update semantics and the task assignment side-effect.
package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
)

// metadataJSON serializes an opaque key-value blob, returning nil when the
// request carried none so existing values are left untouched on update.
func metadataJSON(m map[string]interface{}) (datatypes.JSON, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, apperr.Validationf("invalid metadata: %s", err.Error())
	}
	return datatypes.JSON(b), nil
}
